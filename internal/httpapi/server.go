package httpapi

import (
	"context"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mlmcompare/internal/compare"
	"mlmcompare/internal/httpapi/web"
	"mlmcompare/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Languages() types.LanguagesResponse
	ListModels(ctx context.Context, lang string) (types.ModelsResponse, error)
	FillMask(ctx context.Context, req types.FillMaskRequest) (types.FillMaskResponse, error)
	ChartHTML(ctx context.Context, req types.FillMaskRequest) ([]byte, error)
	Compare(ctx context.Context, req types.CompareRequest) (compare.Comparison, error)
	Disk() *types.DiskUsage
	Status() types.StatusResponse
	Ready() bool
}

type server struct {
	svc  Service
	page *template.Template
}

func NewMux(svc Service) http.Handler {
	s := &server{svc: svc, page: web.Templates()}

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON and HTML responses
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		methods := corsAllowedMethods
		if len(methods) == 0 {
			methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		}
		headers := corsAllowedHeaders
		if len(headers) == 0 {
			headers = []string{"Content-Type", "X-Log-Level", "X-Request-Id"}
		}
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: methods,
			AllowedHeaders: headers,
			MaxAge:         300,
		}))
	}

	r.Get("/", s.handlePage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", s.handleLanguages)
		r.Get("/models", s.handleModels)
		r.Post("/fill-mask", s.handleFillMask)
		r.Post("/compare", s.handleCompare)
		r.Get("/chart", s.handleChart)
		r.Get("/disk", s.handleDisk)
	})

	r.Get("/status", s.handleStatus)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// handleLanguages godoc
// @Summary      List languages
// @Description  Configured languages with their template sentences and top-k bounds.
// @Tags         registry
// @Produce      json
// @Success      200  {object}  types.LanguagesResponse
// @Router       /api/languages [get]
func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Languages())
}

// handleModels godoc
// @Summary      List fill-mask models
// @Description  Registry listing for a language. Registry outages degrade to an empty list with a warning.
// @Tags         registry
// @Produce      json
// @Param        lang  query     string  true  "Language code"
// @Success      200   {object}  types.ModelsResponse
// @Failure      400   {object}  types.ErrorResponse
// @Router       /api/models [get]
func (s *server) handleModels(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		writeJSONError(w, http.StatusBadRequest, "lang is required")
		return
	}
	resp, err := s.svc.ListModels(r.Context(), lang)
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleFillMask godoc
// @Summary      Run fill-mask on one model
// @Description  Memoized inference-and-render step for a single model.
// @Tags         inference
// @Accept       json
// @Produce      json
// @Param        request  body      types.FillMaskRequest  true  "Fill-mask request"
// @Success      200      {object}  types.FillMaskResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Failure      422      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /api/fill-mask [post]
func (s *server) handleFillMask(w http.ResponseWriter, r *http.Request) {
	var req types.FillMaskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	lvl := requestLogLevel(r)
	logStart(r, lvl, "fill-mask", map[string]any{"model": req.Model, "top_k": req.TopK})
	start := time.Now()
	ctx, cancel := workContext(r)
	defer cancel()
	resp, err := s.svc.FillMask(ctx, req)
	if err != nil {
		s.fail(w, r, lvl, "fill-mask", start, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
	logEnd(r, lvl, "fill-mask", http.StatusOK, start, nil)
}

// handleCompare godoc
// @Summary      Compare two models
// @Description  Runs the step for exactly two models concurrently; each column carries its own result or error.
// @Tags         inference
// @Accept       json
// @Produce      json
// @Param        request  body      types.CompareRequest  true  "Comparison request"
// @Success      200      {object}  types.CompareResponse
// @Failure      400      {object}  types.ErrorResponse
// @Router       /api/compare [post]
func (s *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	lvl := requestLogLevel(r)
	logStart(r, lvl, "compare", map[string]any{"models": req.Models, "top_k": req.TopK})
	start := time.Now()
	ctx, cancel := workContext(r)
	defer cancel()
	cmp, err := s.svc.Compare(ctx, req)
	if err != nil {
		s.fail(w, r, lvl, "compare", start, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp.Response())
	logEnd(r, lvl, "compare", http.StatusOK, start, nil)
}

// handleChart godoc
// @Summary      Rendered chart
// @Description  Standalone HTML bar chart of one step, highest score on top.
// @Tags         inference
// @Produce      html
// @Param        model  query     string  true  "Model identifier"
// @Param        text   query     string  true  "Sentence with one [MASK]"
// @Param        topk   query     int     true  "Number of candidates (1-10)"
// @Success      200    {string}  string  "HTML document"
// @Failure      400    {object}  types.ErrorResponse
// @Router       /api/chart [get]
func (s *server) handleChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	topK, err := strconv.Atoi(q.Get("topk"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "topk must be an integer")
		return
	}
	lvl := requestLogLevel(r)
	start := time.Now()
	ctx, cancel := workContext(r)
	defer cancel()
	html, err := s.svc.ChartHTML(ctx, types.FillMaskRequest{Model: q.Get("model"), Text: q.Get("text"), TopK: topK})
	if err != nil {
		s.fail(w, r, lvl, "chart", start, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(html)
	logEnd(r, lvl, "chart", http.StatusOK, start, nil)
}

// handleDisk godoc
// @Summary      Disk usage
// @Tags         status
// @Produce      json
// @Success      200  {object}  types.DiskUsage
// @Failure      503  {object}  types.ErrorResponse
// @Router       /api/disk [get]
func (s *server) handleDisk(w http.ResponseWriter, r *http.Request) {
	du := s.svc.Disk()
	if du == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "disk usage unavailable")
		return
	}
	writeJSON(w, http.StatusOK, du)
}

// handleStatus godoc
// @Summary      Service status
// @Tags         status
// @Produce      json
// @Success      200  {object}  types.StatusResponse
// @Router       /status [get]
func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Status())
}

// fail maps err to a status and writes it, unless the client is gone.
func (s *server) fail(w http.ResponseWriter, r *http.Request, lvl LogLevel, op string, start time.Time, err error) {
	// If context was canceled (client disconnect or shutdown), just return.
	if clientGone(r) {
		return
	}
	status := statusFor(err)
	if status == http.StatusTooManyRequests {
		IncrementBackpressure("queue")
	}
	writeJSONError(w, status, err.Error())
	logEnd(r, lvl, op, status, start, err)
}

// decodeJSON enforces the content type and body limit and decodes into dst.
// It writes the error response itself and reports whether to continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		// If exceeded size, MaxBytesReader causes an error; still return 400 to avoid size leak details
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
