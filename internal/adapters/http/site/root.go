// Package site serves the embedded scoreboard portal page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded portal page routes to mux. The page polls
// the two read endpoints and renders the line and bar charts client-side.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/", http.FileServer(FS()))
}
