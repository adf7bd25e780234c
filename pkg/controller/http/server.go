package http

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/frontend"
	"github.com/secmon-lab/raca/pkg/domain/interfaces"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/model/config"
	"github.com/secmon-lab/raca/pkg/utils/errutil"
	"github.com/secmon-lab/raca/pkg/utils/logging"
	"github.com/secmon-lab/raca/pkg/utils/safe"
)

// DashboardUseCase renders dashboard states over a loaded dataset
type DashboardUseCase interface {
	Render(ds *model.Dataset, state model.DashboardState) (*model.DashboardView, error)
	BusinessUnits() []config.BusinessUnit
}

type Server struct {
	router   *chi.Mux
	uc       DashboardUseCase
	dataset  *model.Dataset
	renderer interfaces.ChartRenderer
	metrics  *Metrics
}

type Options func(*Server)

// WithChartRenderer enables the chart image endpoint
func WithChartRenderer(renderer interfaces.ChartRenderer) Options {
	return func(s *Server) {
		s.renderer = renderer
	}
}

// WithMetrics enables request instrumentation and the /metrics endpoint
func WithMetrics(metrics *Metrics) Options {
	return func(s *Server) {
		s.metrics = metrics
	}
}

func New(uc DashboardUseCase, ds *model.Dataset, opts ...Options) (*Server, error) {
	if ds == nil {
		return nil, goerr.New("dataset is required to serve the dashboard")
	}

	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		dataset: ds,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(sentryReporter)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", s.dashboardHandler)
		r.Post("/dashboard/events", s.dashboardEventHandler)
		r.Get("/options/{level}", s.optionsHandler)
		r.Get("/aggregate", s.aggregateHandler)
		r.Get("/table", s.tableHandler)
		r.Get("/table.csv", s.tableCSVHandler)
		r.Get("/diagnostics", s.diagnosticsHandler)
		r.Get("/business-units", s.businessUnitsHandler)
		r.Get("/snapshot", s.snapshotHandler)
		if s.renderer != nil {
			r.Get("/charts/{chart}.{ext}", s.chartImageHandler)
		}
	})

	// Static file serving for SPA (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind dist dir for static")
	}

	r.Get("/*", spaHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

// spaHandler handles SPA routing by serving static files and falling back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		if urlPath == "" {
			urlPath = "index.html"
		}

		file, err := staticFS.Open(urlPath)
		if err != nil {
			// Unknown paths belong to the dashboard page
			indexFile, err := staticFS.Open("index.html")
			if err != nil {
				http.NotFound(w, r)
				return
			}
			defer safe.Close(r.Context(), indexFile)
			w.Header().Set("Content-Type", "text/html")
			safe.Copy(r.Context(), w, indexFile)
			return
		}
		safe.Close(r.Context(), file)

		fileServer.ServeHTTP(w, r)
	}
}
