package runs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mstanic/runboard/internal/telemetry/tracing"
	"github.com/mstanic/runboard/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=runs_test

const dateParamLayout = "2006-01-02"

type runsRepo interface {
	ListAll(ctx context.Context, params ListParams) ([]Run, error)
	ListPage(ctx context.Context, page, size int) (_ []Run, total int, err error)
}

type runsSyncer interface {
	Sync(ctx context.Context) (SyncResult, error)
}

type ListResponse struct {
	Runs  []Run `json:"runs"`
	Total int   `json:"total"`
}

type Handler struct {
	repo     runsRepo
	syncer   runsSyncer
	analyzer *Analyzer
}

func NewHandler(repo runsRepo, syncer runsSyncer) *Handler {
	return &Handler{
		repo:     repo,
		syncer:   syncer,
		analyzer: NewAnalyzer(),
	}
}

func (handler *Handler) HandleListPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.page")
	defer span.End()

	vars := mux.Vars(r)

	pageStr := vars["page"]
	if pageStr == "" {
		http.Error(w, "error, page empty", http.StatusBadRequest)
		return
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		http.Error(w, "error, page NaN", http.StatusBadRequest)
		return
	}

	sizeStr := vars["size"]
	if sizeStr == "" {
		http.Error(w, "error, size empty", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		http.Error(w, "error, size NaN", http.StatusBadRequest)
		return
	}

	if page < 1 || size < 1 {
		http.Error(w, "error, page and size must be positive", http.StatusBadRequest)
		return
	}

	found, total, err := handler.repo.ListPage(ctx, page, size)
	if err != nil {
		log.Errorf("list runs, page %d size %d: %s", page, size, err)
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}

	if found == nil {
		found = []Run{}
	}

	handler.writeJson(w, ListResponse{
		Runs:  found,
		Total: total,
	})
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.summary")
	defer span.End()

	found, ok := handler.listForRange(ctx, w, r)
	if !ok {
		return
	}

	handler.writeJson(w, handler.analyzer.Summary(found))
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.records")
	defer span.End()

	found, ok := handler.listForRange(ctx, w, r)
	if !ok {
		return
	}

	handler.writeJson(w, handler.analyzer.Records(found))
}

func (handler *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.timeline")
	defer span.End()

	found, ok := handler.listForRange(ctx, w, r)
	if !ok {
		return
	}

	handler.writeJson(w, handler.analyzer.Timeline(found))
}

func (handler *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.sync")
	defer span.End()

	result, err := handler.syncer.Sync(ctx)
	if err != nil {
		log.Errorf("runs sync: %s", err)
		http.Error(w, "runs sync failed", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, result)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.runs.export")
	defer span.End()

	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("export runs, list: %s", err)
		http.Error(w, "failed to export runs", http.StatusInternalServerError)
		return
	}

	xlsxFile, err := runsToXlsx(found)
	if err != nil {
		log.Errorf("export runs, build xlsx: %s", err)
		http.Error(w, "failed to export runs", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("runs-%s.xlsx", time.Now().Format(dateParamLayout))
	w.Header().Set("Content-Type", pkg.ContentType.XLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	if _, err := xlsxFile.WriteTo(w); err != nil {
		log.Errorf("export runs, write xlsx: %s", err)
	}
}

// listForRange reads the optional from/to query params and fetches the
// matching runs; on failure the error response is already written
func (handler *Handler) listForRange(ctx context.Context, w http.ResponseWriter, r *http.Request) ([]Run, bool) {
	params, err := listParamsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	found, err := handler.repo.ListAll(ctx, params)
	if err != nil {
		log.Errorf("list runs for range: %s", err)
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return nil, false
	}

	return found, true
}

func (handler *Handler) writeJson(w http.ResponseWriter, payload any) {
	respJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal runs response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func listParamsFromQuery(r *http.Request) (ListParams, error) {
	var params ListParams
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(dateParamLayout, fromStr)
		if err != nil {
			return ListParams{}, fmt.Errorf("invalid 'from' date, expected YYYY-MM-DD")
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(dateParamLayout, toStr)
		if err != nil {
			return ListParams{}, fmt.Errorf("invalid 'to' date, expected YYYY-MM-DD")
		}
		// make the upper edge inclusive for the whole day
		to = to.Add(24*time.Hour - time.Second)
		params.To = &to
	}
	return params, nil
}
