/*

Gostat evaluates special functions (gamma, error function) and the
chi-square and normal distributions from the command line.

Evaluate the chi-square distribution function with two degrees of
freedom:

	gostat cdf --dist chisq --nu 2 5.99

Print the 5% and 1% critical values for 1 to 10 degrees of freedom,
caching the table in a database:

	gostat table --db tables.db --maxdf 10 0.05 0.01

Perform a likelihood ratio test:

	gostat lrt --df 1 -- -1234.5 -1230.1

To see all the commands run:

	gostat --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	"bitbucket.org/Davydov/gostat/gamma"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("gostat")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("gostat", "special functions and statistical distributions").Version(version)

	// technical
	nThreads = app.Flag("nt", "number of threads to use").Int()
	seed     = app.Flag("seed", "random generator seed, default time based").Default("-1").Int64()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()

	// distribution evaluation
	pdfCmd    = app.Command("pdf", "probability density function")
	pdfDist   = distFlags(pdfCmd)
	pdfX      = pdfCmd.Arg("x", "points").Required().Float64List()
	cdfCmd    = app.Command("cdf", "cumulative distribution function")
	cdfDist   = distFlags(cdfCmd)
	cdfX      = cdfCmd.Arg("x", "points").Required().Float64List()
	cdfUpper  = cdfCmd.Flag("upper", "print the upper tail (survival) probability").Bool()
	quantCmd  = app.Command("quantile", "inverse cumulative distribution function")
	quantDist = distFlags(quantCmd)
	quantP    = quantCmd.Arg("p", "probabilities").Required().Float64List()

	// special functions
	gammaCmd  = app.Command("gamma", "gamma function family")
	gammaFunc = gammaCmd.Arg("function", "lngamma, p (regularized lower incomplete), "+
		"q (regularized upper incomplete) or inv (inverse of p)").
		Required().Enum("lngamma", "p", "q", "inv")
	gammaA  = gammaCmd.Flag("a", "shape parameter for p, q and inv").Default("1").Float64()
	gammaX  = gammaCmd.Arg("x", "arguments").Required().Float64List()
	erfCmd  = app.Command("erf", "error function family")
	erfFunc = erfCmd.Arg("function", "erf, erfc, inv or invc").Required().Enum("erf", "erfc", "inv", "invc")
	erfX    = erfCmd.Arg("x", "arguments").Required().Float64List()

	// likelihood ratio test
	lrtCmd = app.Command("lrt", "likelihood ratio test")
	lrtDF  = lrtCmd.Flag("df", "degrees of freedom").Default("1").Float64()
	lrtL0  = lrtCmd.Arg("lnL0", "log likelihood under the null hypothesis").Required().Float64()
	lrtL1  = lrtCmd.Arg("lnL1", "log likelihood under the alternative hypothesis").Required().Float64()

	// tables
	tableCmd   = app.Command("table", "chi-square critical values")
	tableMinDF = tableCmd.Flag("mindf", "minimum degrees of freedom").Default("1").Int()
	tableMaxDF = tableCmd.Flag("maxdf", "maximum degrees of freedom").Default("30").Int()
	tableDB    = tableCmd.Flag("db", "cache tables in a database").String()
	tableAlpha = tableCmd.Arg("alpha", "significance levels").Default("0.1", "0.05", "0.01", "0.001").Float64List()

	// rate categories
	catCmd    = app.Command("categories", "discrete gamma or beta rate categories")
	catDist   = catCmd.Flag("dist", "gamma or beta").Default("gamma").Enum("gamma", "beta")
	catA      = catCmd.Flag("a", "alpha for gamma, p for beta").Default("1").Float64()
	catB      = catCmd.Flag("b", "beta for gamma, q for beta").Default("1").Float64()
	catK      = catCmd.Flag("k", "number of categories").Default("4").Int()
	catMedian = catCmd.Flag("median", "use median instead of mean").Bool()
	catPNG    = catCmd.Flag("png", "plot categories to a file").String()

	// plot
	plotCmd  = app.Command("plot", "plot density and distribution function")
	plotDist = distFlags(plotCmd)
	plotMin  = plotCmd.Flag("xmin", "minimum x").Float64()
	plotMax  = plotCmd.Flag("xmax", "maximum x").Float64()
	plotOut  = plotCmd.Arg("png", "output file").Default("dist.png").String()

	// sampling
	sampleCmd  = app.Command("sample", "draw random numbers")
	sampleKind = sampleCmd.Flag("kind", "uniform or gaussian").Default("uniform").Enum("uniform", "gaussian")
	sampleN    = sampleCmd.Flag("n", "number of values").Default("10").Int()
	sampleA    = sampleCmd.Flag("a", "minimum for uniform, mean for gaussian").Default("0").Float64()
	sampleB    = sampleCmd.Flag("b", "maximum for uniform, standard deviation for gaussian").Default("1").Float64()

	// propagation
	propCmd   = app.Command("propagate", "propagate normal uncertainty through a function")
	propFunc  = propCmd.Arg("function", "function name").Required().Enum(funcNames()...)
	propMu    = propCmd.Flag("mu", "mean").Default("0").Float64()
	propSigma = propCmd.Flag("sigma", "standard deviation").Default("1").Float64()
)

// distSpec holds distribution flags shared by several commands.
type distSpec struct {
	name      *string
	nu        *float64
	mu, sigma *float64
}

func distFlags(cmd *kingpin.CmdClause) distSpec {
	return distSpec{
		name:  cmd.Flag("dist", "distribution (chisq or normal)").Default("chisq").Enum("chisq", "normal"),
		nu:    cmd.Flag("nu", "chi-square degrees of freedom").Default("1").Float64(),
		mu:    cmd.Flag("mu", "normal mean").Default("0").Float64(),
		sigma: cmd.Flag("sigma", "normal standard deviation").Default("1").Float64(),
	}
}

func (s distSpec) get() (distribution, error) {
	return newDistribution(*s.name, *s.nu, *s.mu, *s.sigma)
}

func run(command string) (result interface{}, err error) {
	switch command {
	case pdfCmd.FullCommand():
		d, err := pdfDist.get()
		if err != nil {
			return nil, err
		}
		return printValues(*pdfX, d.Prob)
	case cdfCmd.FullCommand():
		d, err := cdfDist.get()
		if err != nil {
			return nil, err
		}
		f := d.CDF
		if *cdfUpper {
			f = d.Survival
		}
		return printValues(*cdfX, f)
	case quantCmd.FullCommand():
		d, err := quantDist.get()
		if err != nil {
			return nil, err
		}
		return printValues(*quantP, d.InvCDF)
	case gammaCmd.FullCommand():
		return printValues(*gammaX, gammaFunction(*gammaFunc, *gammaA))
	case erfCmd.FullCommand():
		return printValues(*erfX, erfFunction(*erfFunc))
	case lrtCmd.FullCommand():
		return lrt(*lrtL0, *lrtL1, *lrtDF)
	case tableCmd.FullCommand():
		return table(*tableDB, *tableMinDF, *tableMaxDF, *tableAlpha)
	case catCmd.FullCommand():
		return categories(*catDist, *catA, *catB, *catK, *catMedian, *catPNG)
	case plotCmd.FullCommand():
		d, err := plotDist.get()
		if err != nil {
			return nil, err
		}
		return nil, plotDistribution(d, *plotMin, *plotMax, *plotOut)
	case sampleCmd.FullCommand():
		return sample(*sampleKind, *sampleN, *sampleA, *sampleB, rand.NewSource(*seed))
	case propCmd.FullCommand():
		return propagate(*propFunc, *propMu, *propSigma)
	}
	return nil, fmt.Errorf("unknown command: %s", command)
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	startTime := time.Now()

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "gostat")
	logging.SetLevel(level, "gamma")
	logging.SetLevel(level, "store")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *seed == -1 {
		*seed = time.Now().UnixNano()
		log.Debug("Random seed from time")
	}
	log.Infof("Random seed=%v", *seed)

	runtime.GOMAXPROCS(*nThreads)
	effectiveNThreads := runtime.GOMAXPROCS(0)
	log.Infof("Using threads: %d.", effectiveNThreads)

	gamma.WarmCaches()

	result, err := run(command)
	if err != nil {
		log.Fatal(err)
	}

	deltaT := time.Since(startTime)
	log.Infof("Running time: %v", deltaT)

	summary := &CallSummary{
		Version:     version,
		CommandLine: os.Args,
		Command:     command,
		Seed:        *seed,
		NThreads:    effectiveNThreads,
		TotalTime:   deltaT.Seconds(),
		Result:      result,
	}

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
