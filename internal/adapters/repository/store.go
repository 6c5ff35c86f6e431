// Package repository defines the score event store interface and errors.
package repository

import (
	"context"

	"github.com/okian/scoreportal/internal/domain/model"
)

// Store provides append and scan access to the durable score event log.
// The log is append-only: no update or delete operations exist.
type Store interface {
	// Append durably records one score event and returns its assigned id.
	Append(ctx context.Context, teamID string, score int64, registeredAt int64) (int64, error)

	// ListAll returns every stored event ordered by id, i.e. insertion order.
	ListAll(ctx context.Context) ([]model.ScoreEvent, error)

	// BestByTeam returns one row per team with MAX(score) and
	// MAX(registered_at), ordered by max score descending with team id
	// ascending as the tie-break.
	BestByTeam(ctx context.Context) ([]model.TeamBest, error)

	// Count returns the number of stored events.
	Count(ctx context.Context) (int64, error)

	// TeamCount returns the number of distinct teams with at least one event.
	TeamCount(ctx context.Context) (int64, error)

	// Close releases the underlying database handles.
	Close() error
}
