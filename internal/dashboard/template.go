package dashboard

import (
	"fmt"
	"strconv"
)

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func formatKm(km float64) string {
	return fmt.Sprintf("%s km", formatFloat(km))
}

func formatMeters(meters float64) string {
	return fmt.Sprintf("%s m", formatFloat(meters))
}

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Runboard</title>
	<style>
		body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 1100px; color: #222; }
		h1 { margin-bottom: 0.2rem; }
		.subtitle { color: #777; margin-top: 0; }
		.warning { background: #fff3cd; border: 1px solid #ffe69c; padding: 0.8rem 1rem; border-radius: 6px; }
		.kpis, .records { display: flex; gap: 1rem; flex-wrap: wrap; margin: 1.5rem 0; }
		.card { flex: 1; min-width: 150px; border: 1px solid #e3e3e3; border-radius: 8px; padding: 1rem; }
		.card .value { font-size: 1.6rem; font-weight: 600; }
		.card .label { color: #777; font-size: 0.85rem; }
		iframe { width: 100%; height: 560px; border: none; }
		table { border-collapse: collapse; width: 100%; }
		th, td { text-align: left; padding: 0.5rem 0.8rem; border-bottom: 1px solid #eee; }
		th { color: #777; font-weight: 600; font-size: 0.85rem; text-transform: uppercase; }
	</style>
</head>
<body>
	<h1>Runboard</h1>
	<p class="subtitle">{{if .AthleteName}}{{.AthleteName}} &middot; {{end}}last {{.Summary.RunsCount}} runs</p>

	{{if .Warning}}<p class="warning">{{.Warning}}</p>{{end}}

	<div class="kpis">
		<div class="card"><div class="value">{{.Summary.TotalKm}}</div><div class="label">Total km</div></div>
		<div class="card"><div class="value">{{.Summary.TotalTimeDisplay}}</div><div class="label">Total time</div></div>
		<div class="card"><div class="value">{{.Summary.TotalElevationGain}}</div><div class="label">Total elevation (m)</div></div>
		<div class="card"><div class="value">{{.Summary.AvgPaceDisplay}}</div><div class="label">Average pace</div></div>
	</div>

	<iframe src="/dashboard/charts" title="charts"></iframe>

	{{if .Records}}
	<h2>Best marks</h2>
	<div class="records">
		{{range .Records}}
		<div class="card">
			<div class="value">{{.Value}}</div>
			<div class="label">{{.Title}} &middot; {{.RunName}} ({{.Date}})</div>
		</div>
		{{end}}
	</div>
	{{end}}

	<h2>All runs</h2>
	<table>
		<thead>
			<tr><th>Date</th><th>Name</th><th>Distance</th><th>Time (min)</th><th>Elevation</th><th>Pace</th></tr>
		</thead>
		<tbody>
			{{range .Rows}}
			<tr>
				<td>{{.Date}}</td><td>{{.Name}}</td><td>{{.DistanceKm}}</td>
				<td>{{.Minutes}}</td><td>{{.Elevation}}</td><td>{{.Pace}}</td>
			</tr>
			{{else}}
			<tr><td colspan="6">No runs yet.</td></tr>
			{{end}}
		</tbody>
	</table>
</body>
</html>
`
