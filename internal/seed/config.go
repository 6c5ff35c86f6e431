// Package seed generates synthetic score submissions against a running
// portal and verifies the two read paths afterwards.
package seed

import "time"

// Config controls a seeding run.
type Config struct {
	BaseURL    string        // base URL of the portal, e.g. http://localhost:8080
	NumScores  int           // number of submissions to send
	NumTeams   int           // number of synthetic teams when Teams is empty
	Teams      []string      // explicit team ids; overrides NumTeams
	Workers    int           // concurrent submitters
	Timeout    time.Duration // per-request HTTP timeout
	MaxScore   int64         // submissions are drawn from [0, MaxScore)
	Verbose    bool          // log every failed submission
	SkipVerify bool          // submit only; skip the read-path checks
}

// Stats accumulates the outcome of a run.
type Stats struct {
	Submitted int
	Failed    int
	Elapsed   time.Duration
}
