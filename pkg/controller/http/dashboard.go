package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
	chartsvc "github.com/secmon-lab/raca/pkg/service/chart"
	"github.com/secmon-lab/raca/pkg/usecase"
	"github.com/secmon-lab/raca/pkg/utils/errutil"
	"github.com/secmon-lab/raca/pkg/utils/safe"
)

const maxEventBodySize = 64 * 1024

// stateFromQuery reads a dashboard state from query parameters. Missing selections are All.
func stateFromQuery(r *http.Request) (model.DashboardState, error) {
	q := r.URL.Query()
	tab, err := types.ParseTabID(q.Get("tab"))
	if err != nil {
		return model.DashboardState{}, err
	}

	state := model.DashboardState{
		RiskTypes:    q.Get("risk_types"),
		Risk:         q.Get("risk"),
		Level3:       q.Get("level3"),
		BusinessUnit: q.Get("business_unit"),
		Tab:          tab,
	}
	return state.Normalize(), nil
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromQuery(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid dashboard state"), http.StatusBadRequest)
		return
	}

	view, err := s.uc.Render(s.dataset, state)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render dashboard"), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, view)
}

type dashboardEventRequest struct {
	State model.DashboardState `json:"state"`
	Event model.Event          `json:"event"`
}

func (s *Server) dashboardEventHandler(w http.ResponseWriter, r *http.Request) {
	var req dashboardEventRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode dashboard event"), http.StatusBadRequest)
		return
	}

	if !req.State.Tab.Normalize().IsValid() {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("invalid tab in dashboard state", goerr.V("tab", req.State.Tab)), http.StatusBadRequest)
		return
	}

	next, err := usecase.Apply(s.dataset, req.State, req.Event)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidEvent) {
			status = http.StatusBadRequest
		}
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to apply dashboard event"), status)
		return
	}

	view, err := s.uc.Render(s.dataset, next)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render dashboard"), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, view)
}

func (s *Server) optionsHandler(w http.ResponseWriter, r *http.Request) {
	level, err := types.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	state := model.NewDashboardState()
	if parentLevel, ok := level.Parent(); ok {
		if parent := r.URL.Query().Get("parent"); parent != "" {
			state = state.WithSelection(parentLevel, parent)
		}
	}

	writeJSON(w, r, usecase.Options(s.dataset, state, level))
}

func (s *Server) aggregateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, usecase.Aggregate(s.dataset))
}

func (s *Server) tableHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, usecase.Table(s.dataset, r.URL.Query().Get("business_unit")))
}

func (s *Server) tableCSVHandler(w http.ResponseWriter, r *http.Request) {
	rows := usecase.Table(s.dataset, r.URL.Query().Get("business_unit"))

	var buf bytes.Buffer
	if err := usecase.WriteTableCSV(&buf, rows); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to export table"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="risks.csv"`)
	safe.Write(r.Context(), w, buf.Bytes())
}

func (s *Server) chartImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseChartID(chi.URLParam(r, "chart"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
		return
	}
	format, err := types.ParseImageFormat(chi.URLParam(r, "ext"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
		return
	}
	state, err := stateFromQuery(r)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid dashboard state"), http.StatusBadRequest)
		return
	}

	chart, err := usecase.BuildChart(id, s.dataset, state)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to build chart"), http.StatusInternalServerError)
		return
	}
	if chart.IsEmpty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(chart, format, &buf); err != nil {
		if errors.Is(err, chartsvc.ErrEmptyChart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to render chart", goerr.V("chart", id)), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	safe.Write(r.Context(), w, buf.Bytes())
}

func (s *Server) diagnosticsHandler(w http.ResponseWriter, r *http.Request) {
	diagnostics := s.dataset.Diagnostics()
	if diagnostics == nil {
		diagnostics = []model.Diagnostic{}
	}
	writeJSON(w, r, diagnostics)
}

func (s *Server) businessUnitsHandler(w http.ResponseWriter, r *http.Request) {
	type businessUnitResponse struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	units := s.uc.BusinessUnits()
	resp := make([]businessUnitResponse, len(units))
	for i, unit := range units {
		resp[i] = businessUnitResponse{
			Code: unit.Code.String(),
			Name: unit.Name,
		}
	}
	writeJSON(w, r, resp)
}

func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, s.dataset.Snapshot())
}
