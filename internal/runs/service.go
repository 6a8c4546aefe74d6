package runs

import (
	"context"
	"fmt"

	"github.com/mstanic/runboard/internal/strava"
	"github.com/mstanic/runboard/internal/telemetry/metrics"
	"github.com/mstanic/runboard/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=runs_test

type activitiesProvider interface {
	GetActivities(ctx context.Context, perPage int) ([]strava.Activity, error)
}

type syncRepo interface {
	Upsert(ctx context.Context, run Run) error
}

type SyncResult struct {
	Fetched int `json:"fetched"`
	Runs    int `json:"runs"`
	Synced  int `json:"synced"`
}

// Service pulls fresh activities from Strava and persists the runs among
// them, so the dashboard history outlives the rolling API window.
type Service struct {
	stravaApi         activitiesProvider
	repo              syncRepo
	activitiesPerPage int
	metricsManager    *metrics.Manager
}

type NewServiceParams struct {
	StravaApi         activitiesProvider
	Repo              syncRepo
	ActivitiesPerPage int
	MetricsManager    *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		stravaApi:         params.StravaApi,
		repo:              params.Repo,
		activitiesPerPage: params.ActivitiesPerPage,
		metricsManager:    params.MetricsManager,
	}
}

// Sync fetches the most recent activities, keeps the runs, and upserts
// them. Re-syncing the same window is safe, upserts are idempotent.
func (s *Service) Sync(ctx context.Context) (_ SyncResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "runs.service.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	activities, err := s.stravaApi.GetActivities(ctx, s.activitiesPerPage)
	if err != nil {
		return SyncResult{}, fmt.Errorf("get activities: %w", err)
	}

	result := SyncResult{
		Fetched: len(activities),
	}

	for _, activity := range activities {
		if activity.Type != strava.TypeRun {
			continue
		}
		result.Runs++

		run := NewRunFromActivity(activity)
		if err := s.repo.Upsert(ctx, run); err != nil {
			return result, fmt.Errorf("upsert run %d: %w", run.ID, err)
		}
		result.Synced++
	}

	span.SetAttributes(attribute.Int("synced", result.Synced))
	log.Debugf(
		"runs sync done: %d activities fetched, %d runs, %d synced",
		result.Fetched, result.Runs, result.Synced,
	)

	if s.metricsManager != nil {
		s.metricsManager.CounterRunsSynced.Add(float64(result.Synced))
	}

	return result, nil
}
