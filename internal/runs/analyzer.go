package runs

import (
	"sort"
	"time"
)

type Summary struct {
	RunsCount          int     `json:"runsCount"`
	TotalKm            float64 `json:"totalKm"`
	TotalMinutes       float64 `json:"totalMinutes"`
	TotalTimeDisplay   string  `json:"totalTimeDisplay"`
	TotalElevationGain float64 `json:"totalElevationGain"`
	AvgPaceSecPerKm    float64 `json:"avgPaceSecPerKm"`
	AvgPaceDisplay     string  `json:"avgPaceDisplay"`
}

type Records struct {
	LongestRun    *Run `json:"longestRun,omitempty"`
	FastestRun    *Run `json:"fastestRun,omitempty"`
	MostElevation *Run `json:"mostElevation,omitempty"`
}

type TimelinePoint struct {
	Date                time.Time `json:"date"`
	DistanceKm          float64   `json:"distanceKm"`
	ElevationGainMeters float64   `json:"elevationGainMeters"`
	PaceSecPerKm        float64   `json:"paceSecPerKm"`
}

// Analyzer computes the dashboard aggregations over a set of runs
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Summary sums up distance, time and elevation, and averages the pace
// over the runs that have one
func (a *Analyzer) Summary(runs []Run) Summary {
	var totalKm, totalMinutes, totalElevation float64
	var paceSum float64
	var paceCount int
	for _, run := range runs {
		totalKm += run.DistanceKm
		totalMinutes += run.MovingTimeMinutes()
		totalElevation += run.ElevationGainMeters
		if run.PaceSecPerKm > 0 {
			paceSum += run.PaceSecPerKm
			paceCount++
		}
	}

	var avgPace float64
	if paceCount > 0 {
		avgPace = paceSum / float64(paceCount)
	}

	return Summary{
		RunsCount:          len(runs),
		TotalKm:            round2(totalKm),
		TotalMinutes:       round2(totalMinutes),
		TotalTimeDisplay:   FormatDurationMin(totalMinutes),
		TotalElevationGain: round2(totalElevation),
		AvgPaceSecPerKm:    avgPace,
		AvgPaceDisplay:     FormatPace(avgPace),
	}
}

// Records finds the best marks among the significant runs, i.e. the ones
// of at least one kilometer. All record fields are nil when no run qualifies.
func (a *Analyzer) Records(runs []Run) Records {
	var records Records
	for i := range runs {
		run := runs[i]
		if run.DistanceKm < minRecordDistanceKm {
			continue
		}
		if records.LongestRun == nil || run.DistanceKm > records.LongestRun.DistanceKm {
			records.LongestRun = &runs[i]
		}
		if run.PaceSecPerKm > 0 &&
			(records.FastestRun == nil || run.PaceSecPerKm < records.FastestRun.PaceSecPerKm) {
			records.FastestRun = &runs[i]
		}
		if records.MostElevation == nil || run.ElevationGainMeters > records.MostElevation.ElevationGainMeters {
			records.MostElevation = &runs[i]
		}
	}
	return records
}

// Timeline returns the per-run chart series, oldest run first
func (a *Analyzer) Timeline(runs []Run) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(runs))
	for _, run := range runs {
		points = append(points, TimelinePoint{
			Date:                run.StartedAt,
			DistanceKm:          run.DistanceKm,
			ElevationGainMeters: run.ElevationGainMeters,
			PaceSecPerKm:        run.PaceSecPerKm,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
