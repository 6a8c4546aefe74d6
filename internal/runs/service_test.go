package runs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mstanic/runboard/internal/runs"
	"github.com/mstanic/runboard/internal/strava"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActivity(id int64, activityType string) strava.Activity {
	return strava.Activity{
		ID:                 id,
		Name:               gofakeit.Sentence(3),
		Type:               activityType,
		SportType:          activityType,
		DistanceMeters:     gofakeit.Float64Range(1000, 25000),
		MovingTimeSeconds:  gofakeit.Float64Range(600, 9000),
		TotalElevationGain: gofakeit.Float64Range(0, 500),
		StartDateLocal:     gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
	}
}

func TestService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerMock := NewMockactivitiesProvider(ctrl)
	repoMock := NewMocksyncRepo(ctrl)

	activities := []strava.Activity{
		testActivity(1, strava.TypeRun),
		testActivity(2, "Ride"),
		testActivity(3, strava.TypeRun),
		testActivity(4, "Swim"),
		testActivity(5, strava.TypeRun),
	}

	providerMock.EXPECT().
		GetActivities(gomock.Any(), 100).
		Return(activities, nil)

	var upserted []int64
	repoMock.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run runs.Run) error {
			upserted = append(upserted, run.ID)
			return nil
		}).
		Times(3)

	service := runs.NewService(runs.NewServiceParams{
		StravaApi:         providerMock,
		Repo:              repoMock,
		ActivitiesPerPage: 100,
	})

	result, err := service.Sync(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Fetched)
	assert.Equal(t, 3, result.Runs)
	assert.Equal(t, 3, result.Synced)
	assert.Equal(t, []int64{1, 3, 5}, upserted)
}

func TestService_Sync_fetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerMock := NewMockactivitiesProvider(ctrl)
	repoMock := NewMocksyncRepo(ctrl)

	providerMock.EXPECT().
		GetActivities(gomock.Any(), 100).
		Return(nil, errors.New("strava is down"))

	service := runs.NewService(runs.NewServiceParams{
		StravaApi:         providerMock,
		Repo:              repoMock,
		ActivitiesPerPage: 100,
	})

	_, err := service.Sync(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strava is down")
}

func TestService_Sync_upsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerMock := NewMockactivitiesProvider(ctrl)
	repoMock := NewMocksyncRepo(ctrl)

	providerMock.EXPECT().
		GetActivities(gomock.Any(), 100).
		Return([]strava.Activity{
			testActivity(1, strava.TypeRun),
			testActivity(2, strava.TypeRun),
		}, nil)

	repoMock.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(errors.New("db gone"))

	service := runs.NewService(runs.NewServiceParams{
		StravaApi:         providerMock,
		Repo:              repoMock,
		ActivitiesPerPage: 100,
	})

	result, err := service.Sync(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, result.Fetched)
	assert.Zero(t, result.Synced)
}

func TestService_Sync_noRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	providerMock := NewMockactivitiesProvider(ctrl)
	repoMock := NewMocksyncRepo(ctrl)

	providerMock.EXPECT().
		GetActivities(gomock.Any(), 100).
		Return([]strava.Activity{
			testActivity(1, "Ride"),
			testActivity(2, "Hike"),
		}, nil)

	service := runs.NewService(runs.NewServiceParams{
		StravaApi:         providerMock,
		Repo:              repoMock,
		ActivitiesPerPage: 100,
	})

	result, err := service.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Fetched)
	assert.Zero(t, result.Runs)
	assert.Zero(t, result.Synced)
}
