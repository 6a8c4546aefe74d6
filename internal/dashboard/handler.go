package dashboard

import (
	"context"
	"html/template"
	"net/http"

	"github.com/mstanic/runboard/internal/runs"
	"github.com/mstanic/runboard/internal/strava"
	"github.com/mstanic/runboard/internal/telemetry/tracing"
	"github.com/mstanic/runboard/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type runsRepo interface {
	ListAll(ctx context.Context, params runs.ListParams) ([]runs.Run, error)
}

type athleteProvider interface {
	GetAthlete(ctx context.Context) (*strava.Athlete, error)
}

type Handler struct {
	repo     runsRepo
	athlete  athleteProvider
	analyzer *runs.Analyzer
	tmpl     *template.Template
}

func NewHandler(repo runsRepo, athlete athleteProvider) *Handler {
	return &Handler{
		repo:     repo,
		athlete:  athlete,
		analyzer: runs.NewAnalyzer(),
		tmpl:     template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	}
}

type recordCard struct {
	Title   string
	Value   string
	RunName string
	Date    string
}

type tableRow struct {
	Date       string
	Name       string
	DistanceKm string
	Minutes    string
	Elevation  string
	Pace       string
}

type viewModel struct {
	AthleteName string
	Warning     string
	Summary     runs.Summary
	Records     []recordCard
	Rows        []tableRow
}

// HandleDashboard renders the whole dashboard: KPI summary, best marks,
// the charts (via iframe) and the full runs table. A failing backend
// degrades to an empty page with a warning, never an error page.
func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard")
	defer span.End()

	model := viewModel{}

	found, err := handler.repo.ListAll(ctx, runs.ListParams{})
	if err != nil {
		log.Errorf("dashboard, list runs: %s", err)
		model.Warning = "Could not load runs, showing an empty dashboard."
		found = nil
	}

	if handler.athlete != nil {
		if athlete, err := handler.athlete.GetAthlete(ctx); err == nil {
			model.AthleteName = athlete.Firstname + " " + athlete.Lastname
		} else {
			log.Errorf("dashboard, get athlete: %s", err)
		}
	}

	model.Summary = handler.analyzer.Summary(found)
	model.Records = recordCards(handler.analyzer.Records(found))
	model.Rows = tableRows(found)

	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	if err := handler.tmpl.Execute(w, model); err != nil {
		log.Errorf("dashboard, execute template: %s", err)
	}
}

// HandleCharts renders the chart-only page embedded by the dashboard
func (handler *Handler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.charts")
	defer span.End()

	found, err := handler.repo.ListAll(ctx, runs.ListParams{})
	if err != nil {
		log.Errorf("dashboard charts, list runs: %s", err)
		found = nil
	}

	w.Header().Set("Content-Type", pkg.ContentType.HTML)
	if err := renderChartsPage(w, handler.analyzer.Timeline(found)); err != nil {
		log.Errorf("dashboard charts, render: %s", err)
	}
}

func recordCards(records runs.Records) []recordCard {
	var cards []recordCard
	if records.LongestRun != nil {
		cards = append(cards, recordCard{
			Title:   "Longest run",
			Value:   formatKm(records.LongestRun.DistanceKm),
			RunName: records.LongestRun.Name,
			Date:    records.LongestRun.StartedAt.Format(chartDateLayout),
		})
	}
	if records.FastestRun != nil {
		cards = append(cards, recordCard{
			Title:   "Fastest run",
			Value:   records.FastestRun.PaceDisplay(),
			RunName: records.FastestRun.Name,
			Date:    records.FastestRun.StartedAt.Format(chartDateLayout),
		})
	}
	if records.MostElevation != nil {
		cards = append(cards, recordCard{
			Title:   "Most elevation",
			Value:   formatMeters(records.MostElevation.ElevationGainMeters),
			RunName: records.MostElevation.Name,
			Date:    records.MostElevation.StartedAt.Format(chartDateLayout),
		})
	}
	return cards
}

func tableRows(found []runs.Run) []tableRow {
	rows := make([]tableRow, 0, len(found))
	for _, run := range found {
		rows = append(rows, tableRow{
			Date:       run.StartedAt.Format(chartDateLayout),
			Name:       run.Name,
			DistanceKm: formatKm(run.DistanceKm),
			Minutes:    formatFloat(run.MovingTimeMinutes()),
			Elevation:  formatMeters(run.ElevationGainMeters),
			Pace:       run.PaceDisplay(),
		})
	}
	return rows
}
