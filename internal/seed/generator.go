package seed

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// Submission is one synthetic score event to post.
type Submission struct {
	TeamID string `json:"teamId"`
	Score  int64  `json:"score"`
}

// teamIDs returns the configured team ids, or generates NumTeams synthetic
// ones. Generated ids are uuid-suffixed so repeated runs against the same
// database do not collide.
func teamIDs(config *Config) []string {
	if len(config.Teams) > 0 {
		return config.Teams
	}
	ids := make([]string, config.NumTeams)
	for i := range ids {
		ids[i] = fmt.Sprintf("team-%s", uuid.New().String()[:8])
	}
	return ids
}

// randomInt64 draws from [0, max) using crypto/rand so repeated runs do not
// replay the same score sequence.
func randomInt64(max int64) int64 {
	if max <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0
	}
	return n.Int64()
}

// generateSubmissions produces NumScores submissions spread round-robin
// over the team ids with random scores.
func generateSubmissions(config *Config) []Submission {
	teams := teamIDs(config)
	subs := make([]Submission, config.NumScores)
	for i := range subs {
		subs[i] = Submission{
			TeamID: teams[i%len(teams)],
			Score:  randomInt64(config.MaxScore),
		}
	}
	return subs
}
