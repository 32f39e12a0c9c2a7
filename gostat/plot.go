package main

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/gostat/dist"
)

// plotDistribution saves density and distribution function of d to a
// file. If xmin == xmax, a default range is used.
func plotDistribution(d distribution, xmin, xmax float64, fn string) error {
	if xmin == xmax {
		xmin, xmax = d.Range()
	}
	if xmin > xmax {
		return fmt.Errorf("incorrect plot range: %g..%g", xmin, xmax)
	}

	p := plot.New()
	p.Title.Text = d.String()
	p.X.Label.Text = "x"
	p.X.Min, p.X.Max = xmin, xmax

	var perr error
	// errors are not expected inside the range, remember the first one
	wrap := func(f func(float64) (float64, error)) func(float64) float64 {
		return func(x float64) float64 {
			y, err := f(x)
			if err != nil && perr == nil {
				perr = err
			}
			return y
		}
	}

	pdf := plotter.NewFunction(wrap(d.Prob))
	pdf.XMin, pdf.XMax = xmin, xmax
	pdf.Samples = 200
	pdf.Color = plotutil.Color(0)

	cdf := plotter.NewFunction(wrap(d.CDF))
	cdf.XMin, cdf.XMax = xmin, xmax
	cdf.Samples = 200
	cdf.Color = plotutil.Color(1)
	cdf.Dashes = plotutil.Dashes(1)

	// functions do not report data ranges
	p.Y.Min, p.Y.Max = 0, 1
	for i := 0; i <= pdf.Samples; i++ {
		y := pdf.F(xmin + (xmax-xmin)*float64(i)/float64(pdf.Samples))
		if y > p.Y.Max && !math.IsInf(y, 1) {
			p.Y.Max = y
		}
	}

	p.Add(pdf, cdf)
	p.Legend.Add("density", pdf)
	p.Legend.Add("cdf", cdf)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, fn); err != nil {
		return err
	}
	if perr != nil {
		return perr
	}
	log.Noticef("Plot saved to %s", fn)
	return nil
}

// categories prints discrete gamma or beta rate categories and
// optionally plots them.
func categories(distName string, a, b float64, k int, useMedian bool, fn string) ([]float64, error) {
	var r []float64
	var err error
	switch distName {
	case "gamma":
		r, err = dist.DiscreteGamma(a, b, k, useMedian, nil, nil)
	case "beta":
		r, err = dist.DiscreteBeta(a, b, k, useMedian, nil, nil)
	default:
		err = fmt.Errorf("Unknown distribution: %s", distName)
	}
	if err != nil {
		return nil, err
	}
	fmt.Println(r)

	if fn == "" {
		return r, nil
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("discrete %s(%g, %g)", distName, a, b)

	pts := make(plotter.XYs, k)
	x := 0.0
	for i, v := range r {
		pts[i].X = v
		pts[i].Y = x
		x += 1. / float64(k)
	}

	err = plotutil.AddLinePoints(p, "categories", pts)
	if err != nil {
		return nil, err
	}

	if err := p.Save(4*vg.Inch, 4*vg.Inch, fn); err != nil {
		return nil, err
	}
	return r, nil
}
