package main

// CallSummary stores gostat run summary information.
type CallSummary struct {
	// Version stores gostat version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Command is the name of the command executed.
	Command string `json:"command"`
	// Seed is the seed used for random number generation initialization.
	Seed int64 `json:"seed"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Time is the computations time in seconds.
	TotalTime float64 `json:"time"`
	// Result is the command output.
	Result interface{} `json:"result,omitempty"`
}

// PropagationSummary is the distribution after uncertainty propagation.
type PropagationSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"sd"`
}
