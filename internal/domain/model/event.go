// Package model contains domain models passed between layers.
package model

// ScoreEvent is one stored score submission. Fields mirror the scores table.
type ScoreEvent struct {
	ID           int64  // store-assigned, strictly increasing with insertion order
	TeamID       string // submitter-supplied identifier, not checked against a team list
	Score        int64  // any sign, no bound enforced
	RegisteredAt int64  // epoch milliseconds, assigned by ingestion at write time
}

// TeamBest is one team's ranking row: the maximum score and the most recent
// submission time over that team's events. The two maxima are independent
// aggregates and need not come from the same event.
type TeamBest struct {
	TeamID        string
	MaxScore      int64
	MaxRegistered int64
}
