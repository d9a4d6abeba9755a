package qlocate

/*
Config carries the run parameters. It is an explicit value handed to
the locator and scheduler at construction time; there is no
process-wide configuration state.

UseSolutionCount opts in to sizing the iteration count from the
brute-force solution set. Off by default: the iteration formula then
assumes a single solution, which over- or under-rotates when M > 1.
That approximation is inherent to the schedule, not corrected behind
the caller's back.
*/
type Config struct {
	Shots               int
	ConfidenceThreshold float64
	UseSolutionCount    bool
	Debug               bool
}

func NewConfig() *Config {
	return &Config{
		Shots:               1024,
		ConfidenceThreshold: 0.5,
	}
}
