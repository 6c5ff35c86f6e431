// Package chart turns the raw score event log into chart-ready aggregates.
//
// Both builders are pure functions of their inputs: reading twice with no
// intervening write yields identical output. All events are aggregated in
// memory per call; that is the accepted scalability ceiling for a
// time-bounded competition with a bounded number of submissions.
package chart

import (
	"github.com/okian/scoreportal/internal/domain/model"
	"github.com/okian/scoreportal/internal/domain/teams"
)

// Point is one (timestamp, score) sample on a team's line.
type Point struct {
	X int64 `json:"x"` // registeredAt, epoch ms
	Y int64 `json:"y"` // score
}

// SeriesDataset is one team's time series. Label is omitted entirely when
// the team has no configured display name.
type SeriesDataset struct {
	Label       string  `json:"label,omitempty"`
	Data        []Point `json:"data"`
	BorderWidth int     `json:"borderWidth"`
}

// Series is the response shape of the time-series read path.
type Series struct {
	LatestTimestamp int64           `json:"latestTimestamp"`
	Datasets        []SeriesDataset `json:"datasets"`
}

// LatestDataset is the single bar dataset of the ranking snapshot.
type LatestDataset struct {
	Data            []int64  `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
	BorderColor     []string `json:"borderColor"`
	BorderWidth     int      `json:"borderWidth"`
}

// Latest is the response shape of the ranking read path. Labels and the
// dataset arrays are parallel, ordered by best score descending.
type Latest struct {
	LatestTimestamp int64           `json:"latestTimestamp"`
	Labels          []string        `json:"labels"`
	Datasets        []LatestDataset `json:"datasets"`
}

// BuildSeries groups events into one dataset per team, preserving the scan
// order: datasets appear in order of each team's first event, points within
// a dataset keep insertion order. It also computes the global latest
// registeredAt, 0 when there are no events.
func BuildSeries(events []model.ScoreEvent, names *teams.NameMap, borderWidth int) Series {
	var latest int64
	points := make(map[string][]Point, len(events))
	order := make([]string, 0, len(events))

	for _, ev := range events {
		if _, seen := points[ev.TeamID]; !seen {
			order = append(order, ev.TeamID)
		}
		points[ev.TeamID] = append(points[ev.TeamID], Point{X: ev.RegisteredAt, Y: ev.Score})
		if ev.RegisteredAt > latest {
			latest = ev.RegisteredAt
		}
	}

	datasets := make([]SeriesDataset, 0, len(order))
	for _, teamID := range order {
		label, _ := names.Lookup(teamID)
		datasets = append(datasets, SeriesDataset{
			Label:       label,
			Data:        points[teamID],
			BorderWidth: borderWidth,
		})
	}

	return Series{LatestTimestamp: latest, Datasets: datasets}
}

// BuildLatest renders ranking rows into the bar-chart shape. Rows are
// expected in ranking order (best score descending) as produced by the
// store. Colors cycle through the palette modulo its length. A team without
// a configured display name is labeled with its raw id so labels stay a
// plain string array. The global latest timestamp is the maximum of the
// per-team maxima, 0 when there are no teams.
func BuildLatest(rows []model.TeamBest, names *teams.NameMap, palette []Color, borderWidth int) Latest {
	if len(palette) == 0 {
		palette = DefaultPalette()
	}

	var latest int64
	labels := make([]string, 0, len(rows))
	data := make([]int64, 0, len(rows))
	background := make([]string, 0, len(rows))
	border := make([]string, 0, len(rows))

	for i, row := range rows {
		label, ok := names.Lookup(row.TeamID)
		if !ok {
			label = row.TeamID
		}
		labels = append(labels, label)
		data = append(data, row.MaxScore)

		color := palette[i%len(palette)]
		background = append(background, color.Background)
		border = append(border, color.Border)

		if row.MaxRegistered > latest {
			latest = row.MaxRegistered
		}
	}

	return Latest{
		LatestTimestamp: latest,
		Labels:          labels,
		Datasets: []LatestDataset{
			{
				Data:            data,
				BackgroundColor: background,
				BorderColor:     border,
				BorderWidth:     borderWidth,
			},
		},
	}
}
