package site_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/scoreportal/internal/adapters/http/site"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given a mux with the portal page registered", t, func() {
		mux := http.NewServeMux()
		site.Register(context.Background(), mux)

		Convey("When requesting the root path", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the portal HTML is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "scoreLineChart")
				So(w.Body.String(), ShouldContainSubstring, "latestScoreChart")
			})
		})

		Convey("When requesting a missing asset", func() {
			req := httptest.NewRequest(http.MethodGet, "/nope.js", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should respond 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})

	Convey("Given a nil mux", t, func() {
		Convey("Then registration panics loudly", func() {
			So(func() { site.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
