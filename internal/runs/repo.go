package runs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mstanic/runboard/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRunNotFound = errors.New("run not found")

type ListParams struct {
	From *time.Time
	To   *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert inserts the run, or refreshes its metrics when the same Strava
// activity was synced before. The Strava activity id is the primary key.
func (r *Repo) Upsert(ctx context.Context, run Run) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO run
				(id, name, distance_km, moving_time_seconds, elevation_gain, pace_sec_per_km, started_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, now())
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				distance_km = EXCLUDED.distance_km,
				moving_time_seconds = EXCLUDED.moving_time_seconds,
				elevation_gain = EXCLUDED.elevation_gain,
				pace_sec_per_km = EXCLUDED.pace_sec_per_km,
				started_at = EXCLUDED.started_at;`,
		run.ID, run.Name, run.DistanceKm, run.MovingTimeSeconds,
		run.ElevationGainMeters, run.PaceSecPerKm, run.StartedAt,
	)
	return err
}

func (r *Repo) Get(ctx context.Context, id int64) (*Run, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, distance_km, moving_time_seconds, elevation_gain, pace_sec_per_km, started_at, created_at
			FROM run
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2runs(rows)
	if err != nil {
		return nil, err
	}

	if len(found) != 1 {
		return nil, ErrRunNotFound
	}

	return &found[0], nil
}

// ListAll returns runs in the given time window, newest first.
// Nil window edges mean unbounded.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []Run, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, distance_km, moving_time_seconds, elevation_gain, pace_sec_per_km, started_at, created_at
			FROM run
				WHERE ($1::timestamptz IS NULL OR started_at >= $1)
				AND ($2::timestamptz IS NULL OR started_at <= $2)
			ORDER BY started_at DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2runs(rows)
}

func (r *Repo) ListPage(ctx context.Context, page, size int) (_ []Run, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.runs.page")
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	limit := size
	offset := (page - 1) * size
	countAll, err := r.Count(ctx)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		all, err := r.ListAll(ctx, ListParams{})
		return all, len(all), err
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	log.Tracef("getting runs, total count %d, limit %d, offset %d", countAll, limit, offset)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, distance_km, moving_time_seconds, elevation_gain, pace_sec_per_km, started_at, created_at
			FROM run
			ORDER BY started_at DESC
			LIMIT $1
			OFFSET $2;`,
		limit,
		offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	found, err := r.rows2runs(rows)
	if err != nil {
		return nil, -1, err
	}
	return found, countAll, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	rows, err := r.db.Query(ctx, `SELECT COUNT(*) FROM run;`)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if !rows.Next() {
		return -1, errors.New("unexpected error [no rows next]")
	}

	var count int
	if err := rows.Scan(&count); err != nil {
		return -1, fmt.Errorf("rows scan: %w", err)
	}

	return count, nil
}

func (r *Repo) rows2runs(rows pgx.Rows) ([]Run, error) {
	var found []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.Name,
			&run.DistanceKm,
			&run.MovingTimeSeconds,
			&run.ElevationGainMeters,
			&run.PaceSecPerKm,
			&run.StartedAt,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		found = append(found, run)
	}
	return found, nil
}
