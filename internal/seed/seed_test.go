package seed

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerateSubmissions(t *testing.T) {
	Convey("Given a config with synthetic teams", t, func() {
		config := &Config{NumScores: 20, NumTeams: 4, MaxScore: 100}

		Convey("When generating submissions", func() {
			subs := generateSubmissions(config)

			Convey("Then the requested count is produced", func() {
				So(subs, ShouldHaveLength, 20)
			})

			Convey("And submissions spread over exactly NumTeams teams", func() {
				teams := make(map[string]int)
				for _, sub := range subs {
					teams[sub.TeamID]++
				}
				So(teams, ShouldHaveLength, 4)
				for _, n := range teams {
					So(n, ShouldEqual, 5)
				}
			})

			Convey("And scores stay inside the configured bound", func() {
				for _, sub := range subs {
					So(sub.Score, ShouldBeGreaterThanOrEqualTo, 0)
					So(sub.Score, ShouldBeLessThan, 100)
				}
			})
		})
	})

	Convey("Given explicit team ids", t, func() {
		config := &Config{
			NumScores: 6,
			Teams:     []string{"team-a", "team-b"},
			MaxScore:  10,
		}

		Convey("When generating submissions", func() {
			subs := generateSubmissions(config)

			Convey("Then only the given ids are used", func() {
				for _, sub := range subs {
					So(sub.TeamID, ShouldBeIn, "team-a", "team-b")
				}
			})
		})
	})
}

func TestRandomInt64(t *testing.T) {
	Convey("Given the random score helper", t, func() {
		Convey("When the bound is non-positive", func() {
			So(randomInt64(0), ShouldEqual, 0)
			So(randomInt64(-5), ShouldEqual, 0)
		})

		Convey("When the bound is positive", func() {
			for range 50 {
				v := randomInt64(10)
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 10)
			}
		})
	})
}
