package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	app "github.com/okian/scoreportal/internal/app"
	"github.com/okian/scoreportal/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestNewMux(t *testing.T) {
	Convey("Given a started service and the full mux", t, func() {
		ctx := context.Background()
		svc := app.New(
			app.WithDBPath(filepath.Join(t.TempDir(), "scores.db")),
			app.WithTeamNames(map[string]string{"team0": "Alpha"}),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		mux := newMux(ctx, svc)

		Convey("Then the portal page is served at root", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then the docs routes are wired", func() {
			req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("Then a submission round-trips through the API routes", func() {
			post := httptest.NewRequest(http.MethodPost, "/api/scores",
				strings.NewReader(`{"teamId":"team0","score":5}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, post)
			So(w.Code, ShouldEqual, http.StatusCreated)

			get := httptest.NewRequest(http.MethodGet, "/api/scores/latest", nil)
			w = httptest.NewRecorder()
			mux.ServeHTTP(w, get)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Alpha")
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	Convey("Given the system metrics updater", t, func() {
		Convey("Then a refresh should not panic", func() {
			So(updateSystemMetrics, ShouldNotPanic)
		})
	})
}
