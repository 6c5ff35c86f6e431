package config_test

import (
	"testing"

	"github.com/okian/scoreportal/internal/config"
	"github.com/okian/scoreportal/internal/domain/chart"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigDefaults(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("Then defaults are sensible", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.DBPath, convey.ShouldEqual, "scores.db")
			convey.So(cfg.Freeze, convey.ShouldBeFalse)
			convey.So(cfg.BorderWidth, convey.ShouldEqual, 1)
			convey.So(cfg.QueryTimeoutMS, convey.ShouldEqual, 10_000)
			convey.So(cfg.TeamNames, convey.ShouldBeEmpty)
			convey.So(cfg.Palette, convey.ShouldResemble, chart.DefaultPalette())
		})
	})
}
