package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	repository "github.com/okian/scoreportal/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func newStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := repository.NewSQLiteStore(context.Background(), path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_Append(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := newStore(t)
		ctx := context.Background()

		Convey("When appending events", func() {
			id1, err1 := store.Append(ctx, "team-a", 10, 1000)
			id2, err2 := store.Append(ctx, "team-a", 20, 2000)

			Convey("Then ids are assigned in strictly increasing order", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(id2, ShouldBeGreaterThan, id1)
			})

			Convey("And the event count reflects both rows", func() {
				n, err := store.Count(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})
		})

		Convey("When appending negative and zero scores", func() {
			_, errNeg := store.Append(ctx, "team-a", -5, 1000)
			_, errZero := store.Append(ctx, "team-a", 0, 2000)

			Convey("Then both are accepted", func() {
				So(errNeg, ShouldBeNil)
				So(errZero, ShouldBeNil)
			})
		})

		Convey("When appending identical submissions twice", func() {
			_, err1 := store.Append(ctx, "team-a", 10, 1000)
			_, err2 := store.Append(ctx, "team-a", 10, 1000)

			Convey("Then two distinct events exist; no dedupe", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				n, err := store.Count(ctx)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})
		})
	})
}

func TestSQLiteStore_ListAll(t *testing.T) {
	Convey("Given a store with interleaved team events", t, func() {
		store := newStore(t)
		ctx := context.Background()

		_, _ = store.Append(ctx, "team-a", 10, 3000) // timestamps deliberately
		_, _ = store.Append(ctx, "team-b", 30, 1000) // out of order vs ids
		_, _ = store.Append(ctx, "team-a", 20, 2000)

		Convey("When listing all events", func() {
			events, err := store.ListAll(ctx)

			Convey("Then events come back in insertion (id) order", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 3)
				So(events[0].TeamID, ShouldEqual, "team-a")
				So(events[0].RegisteredAt, ShouldEqual, 3000)
				So(events[1].TeamID, ShouldEqual, "team-b")
				So(events[2].Score, ShouldEqual, 20)
			})

			Convey("And listing again yields the identical result", func() {
				again, err := store.ListAll(ctx)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, events)
			})
		})

		Convey("When counting distinct teams", func() {
			n, err := store.TeamCount(ctx)

			Convey("Then both teams are counted once", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})
		})
	})

	Convey("Given an empty store", t, func() {
		store := newStore(t)

		Convey("When listing all events", func() {
			events, err := store.ListAll(context.Background())

			Convey("Then the result is empty without error", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 0)
			})
		})
	})
}

func TestSQLiteStore_BestByTeam(t *testing.T) {
	Convey("Given events where max score and max timestamp disagree", t, func() {
		store := newStore(t)
		ctx := context.Background()

		// team-a's best score (20) predates its latest submission (5 @ 5000).
		_, _ = store.Append(ctx, "team-a", 10, 1000)
		_, _ = store.Append(ctx, "team-b", 30, 2000)
		_, _ = store.Append(ctx, "team-a", 20, 3000)
		_, _ = store.Append(ctx, "team-a", 5, 5000)

		Convey("When computing the ranking rows", func() {
			best, err := store.BestByTeam(ctx)

			Convey("Then teams are ordered by max score descending", func() {
				So(err, ShouldBeNil)
				So(best, ShouldHaveLength, 2)
				So(best[0].TeamID, ShouldEqual, "team-b")
				So(best[0].MaxScore, ShouldEqual, 30)
				So(best[1].TeamID, ShouldEqual, "team-a")
				So(best[1].MaxScore, ShouldEqual, 20)
			})

			Convey("And each row carries the independent max timestamp", func() {
				So(best[1].MaxRegistered, ShouldEqual, 5000)
			})
		})
	})

	Convey("Given teams tied on max score", t, func() {
		store := newStore(t)
		ctx := context.Background()

		_, _ = store.Append(ctx, "team-z", 10, 1000)
		_, _ = store.Append(ctx, "team-a", 10, 2000)

		Convey("When computing the ranking rows", func() {
			best, err := store.BestByTeam(ctx)

			Convey("Then team id ascending breaks the tie", func() {
				So(err, ShouldBeNil)
				So(best[0].TeamID, ShouldEqual, "team-a")
				So(best[1].TeamID, ShouldEqual, "team-z")
			})
		})
	})

	Convey("Given an empty store", t, func() {
		store := newStore(t)

		Convey("When computing the ranking rows", func() {
			best, err := store.BestByTeam(context.Background())

			Convey("Then no rows are returned", func() {
				So(err, ShouldBeNil)
				So(best, ShouldHaveLength, 0)
			})
		})
	})
}

func TestSQLiteStore_Closed(t *testing.T) {
	Convey("Given a closed store", t, func() {
		path := filepath.Join(t.TempDir(), "scores.db")
		store, err := repository.NewSQLiteStore(context.Background(), path,
			repository.WithQueryTimeout(time.Second))
		So(err, ShouldBeNil)
		So(store.Close(), ShouldBeNil)

		Convey("When appending after close", func() {
			_, err := store.Append(context.Background(), "team-a", 1, 1)

			Convey("Then the write fails with a storage error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
