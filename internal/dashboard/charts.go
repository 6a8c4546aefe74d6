package dashboard

import (
	"io"

	"github.com/mstanic/runboard/internal/runs"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const chartDateLayout = "2006-01-02"

// renderChartsPage renders the two timeline line charts as a standalone
// HTML page, embedded by the dashboard via an iframe
func renderChartsPage(w io.Writer, points []runs.TimelinePoint) error {
	page := components.NewPage()
	page.PageTitle = "Runboard Charts"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		buildDistanceChart(points),
		buildPaceChart(points),
	)
	return page.Render(w)
}

func buildDistanceChart(points []runs.TimelinePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Distance and Elevation",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	dates := make([]string, 0, len(points))
	distance := make([]opts.LineData, 0, len(points))
	elevation := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		dates = append(dates, point.Date.Format(chartDateLayout))
		distance = append(distance, opts.LineData{Value: point.DistanceKm})
		elevation = append(elevation, opts.LineData{Value: point.ElevationGainMeters})
	}

	line.SetXAxis(dates).
		AddSeries("Distance (km)", distance).
		AddSeries("Elevation gain (m)", elevation).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}))

	return line
}

func buildPaceChart(points []runs.TimelinePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Pace (min/km)",
			Subtitle: "lower is faster",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	dates := make([]string, 0, len(points))
	pace := make([]opts.LineData, 0, len(points))
	for _, point := range points {
		dates = append(dates, point.Date.Format(chartDateLayout))
		// minutes per km reads better on the axis than seconds
		var paceMin float64
		if point.PaceSecPerKm > 0 {
			paceMin = point.PaceSecPerKm / 60
		}
		pace = append(pace, opts.LineData{Value: paceMin})
	}

	line.SetXAxis(dates).
		AddSeries("Pace (min/km)", pace).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}))

	return line
}
