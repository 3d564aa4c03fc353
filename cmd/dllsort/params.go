package main

// ParametersRunner contains the definition of the parameters used by the sort runner.
type ParametersRunner struct {
	ListSize    int   `default:"20000" usage:"the number of random integers per list"`
	Rounds      int   `default:"1" usage:"the number of lists that are sorted and verified"`
	WorkerCount int   `default:"1" usage:"the number of rounds that run concurrently"`
	Seed        int64 `default:"1" usage:"the seed of the first round, round i uses seed+i"`
	MaxValue    int   `default:"1000" usage:"the exclusive upper bound of the random values"`
}

// ParametersLogger contains the definition of the parameters used by the logger.
type ParametersLogger struct {
	Level             string   `default:"info" usage:"the minimum enabled logging level"`
	DisableCaller     bool     `default:"true" usage:"stops annotating logs with the calling function's file name and line number"`
	DisableStacktrace bool     `default:"false" usage:"disables automatic stacktrace capturing"`
	Encoding          string   `default:"console" usage:"the logger's encoding (options: \"json\", \"console\")"`
	OutputPaths       []string `default:"stdout" usage:"a list of URLs, file paths or stdout/stderr to write logging output to"`
}
