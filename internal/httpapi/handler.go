package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unitconv/internal/domain"
)

const (
	routeConvert = "/api/v1/convert"
	routeUnits   = "/api/v1/units"

	maxBodyBytes = 1 << 16
)

// Options tunes the handler. Zero values fall back to defaults.
type Options struct {
	RPS      float64
	Burst    int
	Registry *prometheus.Registry
}

// Handler serves the HTTP API.
type Handler struct {
	conv     domain.Converter
	logger   *slog.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	mux      *http.ServeMux
}

// NewHandler builds the API over conv.
func NewHandler(conv domain.Converter, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RPS <= 0 {
		opts.RPS = 50
	}
	if opts.Burst <= 0 {
		opts.Burst = 100
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	h := &Handler{
		conv:     conv,
		logger:   logger,
		metrics:  NewMetrics(registry),
		registry: registry,
		mux:      http.NewServeMux(),
	}

	api := http.NewServeMux()
	api.HandleFunc(routeConvert, h.handleConvert)
	api.HandleFunc(routeUnits, h.handleUnits)

	limiter := NewLimiter(opts.RPS, opts.Burst)
	var apiHandler http.Handler = api
	apiHandler = limiter.Middleware(h.metrics, apiHandler)
	apiHandler = h.metrics.Middleware(apiHandler)
	apiHandler = WithRequestID(apiHandler)
	apiHandler = WithLogging(logger, apiHandler)

	h.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	h.mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	h.mux.Handle("/api/", apiHandler)

	return h
}

// Metrics returns the handler's collectors.
func (h *Handler) Metrics() *Metrics { return h.metrics }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req = ConvertRequest{Value: q.Get("value"), From: q.Get("from"), To: q.Get("to")}
	case http.MethodPost:
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid JSON body: "+err.Error())
			return
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
		return
	}

	// The engine picks the error; a unit parse error only replaces its
	// ErrUnknownUnit, keeping the raw name in the message.
	from, fromErr := domain.ParseUnit(req.From)
	to, toErr := domain.ParseUnit(req.To)

	result, err := h.conv.Convert(req.Value, from, to)
	if errors.Is(err, domain.ErrUnknownUnit) {
		if fromErr != nil {
			err = fromErr
		} else if toErr != nil {
			err = toErr
		}
	}
	if err != nil {
		h.fail(w, err)
		return
	}

	h.metrics.ConversionsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, ConvertResponse{
		Value:  req.Value,
		From:   unitName(from, req.From),
		To:     unitName(to, req.To),
		Result: result,
	})
}

// unitName is the canonical name of u, or raw when u did not parse.
func unitName(u domain.Unit, raw string) string {
	if u.Valid() {
		return u.String()
	}
	return raw
}

func (h *Handler) handleUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, unitInfos())
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status, code := classify(err)
	h.metrics.ConversionsTotal.WithLabelValues(code).Inc()
	writeError(w, status, code, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}
