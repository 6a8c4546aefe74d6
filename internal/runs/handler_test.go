package runs_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mstanic/runboard/internal/runs"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHandler_HandleListPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrunsRepo(ctrl)
	syncerMock := NewMockrunsSyncer(ctrl)
	handler := runs.NewHandler(repoMock, syncerMock)

	repoMock.EXPECT().
		ListPage(gomock.Any(), 2, 10).
		Return(testRuns()[:2], 25, nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/list/page/2/size/10", nil)
	req = mux.SetURLVars(req, map[string]string{"page": "2", "size": "10"})
	rec := httptest.NewRecorder()

	handler.HandleListPage(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp runs.ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 25, resp.Total)
	require.Len(t, resp.Runs, 2)
	assert.Equal(t, "Long Run", resp.Runs[0].Name)
}

func TestHandler_HandleListPage_invalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := runs.NewHandler(NewMockrunsRepo(ctrl), NewMockrunsSyncer(ctrl))

	for _, vars := range []map[string]string{
		{"page": "", "size": "10"},
		{"page": "first", "size": "10"},
		{"page": "1", "size": ""},
		{"page": "1", "size": "ten"},
		{"page": "0", "size": "10"},
		{"page": "1", "size": "-5"},
	} {
		req := httptest.NewRequest(http.MethodGet, "/runs/list", nil)
		req = mux.SetURLVars(req, vars)
		rec := httptest.NewRecorder()
		handler.HandleListPage(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "vars: %v", vars)
	}
}

func TestHandler_HandleSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrunsRepo(ctrl)
	handler := runs.NewHandler(repoMock, NewMockrunsSyncer(ctrl))

	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params runs.ListParams) ([]runs.Run, error) {
			require.NotNil(t, params.From)
			require.NotNil(t, params.To)
			assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *params.From)
			// upper edge covers the whole day
			assert.Equal(t, 23, params.To.Hour())
			return testRuns(), nil
		})

	req := httptest.NewRequest(http.MethodGet, "/runs/summary?from=2026-08-01&to=2026-08-25", nil)
	rec := httptest.NewRecorder()

	handler.HandleSummary(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary runs.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, 4, summary.RunsCount)
	assert.InDelta(t, 29.9, summary.TotalKm, 0.0001)
	assert.Equal(t, "3h 6min", summary.TotalTimeDisplay)
}

func TestHandler_HandleSummary_invalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := runs.NewHandler(NewMockrunsRepo(ctrl), NewMockrunsSyncer(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/runs/summary?from=20-08-2026", nil)
	rec := httptest.NewRecorder()

	handler.HandleSummary(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrunsRepo(ctrl)
	handler := runs.NewHandler(repoMock, NewMockrunsSyncer(ctrl))

	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		Return(testRuns(), nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/records", nil)
	rec := httptest.NewRecorder()

	handler.HandleRecords(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var records runs.Records
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&records))
	require.NotNil(t, records.LongestRun)
	assert.Equal(t, int64(1), records.LongestRun.ID)
	require.NotNil(t, records.FastestRun)
	assert.Equal(t, int64(2), records.FastestRun.ID)
}

func TestHandler_HandleRecords_noRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrunsRepo(ctrl)
	handler := runs.NewHandler(repoMock, NewMockrunsSyncer(ctrl))

	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/records", nil)
	rec := httptest.NewRecorder()

	handler.HandleRecords(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestHandler_HandleTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrunsRepo(ctrl)
	handler := runs.NewHandler(repoMock, NewMockrunsSyncer(ctrl))

	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		Return(testRuns(), nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/timeline", nil)
	rec := httptest.NewRecorder()

	handler.HandleTimeline(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var points []runs.TimelinePoint
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&points))
	require.Len(t, points, 4)
	assert.True(t, points[0].Date.Before(points[3].Date))
}

func TestHandler_HandleSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncerMock := NewMockrunsSyncer(ctrl)
	handler := runs.NewHandler(NewMockrunsRepo(ctrl), syncerMock)

	syncerMock.EXPECT().
		Sync(gomock.Any()).
		Return(runs.SyncResult{Fetched: 100, Runs: 42, Synced: 42}, nil)

	req := httptest.NewRequest(http.MethodPost, "/runs/sync", nil)
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result runs.SyncResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 100, result.Fetched)
	assert.Equal(t, 42, result.Synced)
}

func TestHandler_HandleSync_error(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncerMock := NewMockrunsSyncer(ctrl)
	handler := runs.NewHandler(NewMockrunsRepo(ctrl), syncerMock)

	syncerMock.EXPECT().
		Sync(gomock.Any()).
		Return(runs.SyncResult{}, errors.New("strava is down"))

	req := httptest.NewRequest(http.MethodPost, "/runs/sync", nil)
	rec := httptest.NewRecorder()

	handler.HandleSync(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_HandleExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockrunsRepo(ctrl)
	handler := runs.NewHandler(repoMock, NewMockrunsSyncer(ctrl))

	repoMock.EXPECT().
		ListAll(gomock.Any(), gomock.Any()).
		Return(testRuns(), nil)

	req := httptest.NewRequest(http.MethodGet, "/runs/export", nil)
	rec := httptest.NewRecorder()

	handler.HandleExport(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	xlsxFile, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, xlsxFile.Close())
	}()

	rows, err := xlsxFile.GetRows("Runs")
	require.NoError(t, err)
	// header + 4 runs
	require.Len(t, rows, 5)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "Long Run", rows[1][1])
	assert.Equal(t, "2026-08-23", rows[1][0])
}
