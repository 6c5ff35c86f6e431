package repository

import "time"

// Option applies a configuration option to the SQLiteStore.
type Option func(*SQLiteStore)

// WithQueryTimeout bounds every store query with the given timeout. Zero
// disables the bound and defers to the caller's context.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(s *SQLiteStore) {
		if timeout > 0 {
			s.queryTimeout = timeout
		}
	}
}
