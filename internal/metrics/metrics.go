package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	NarrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviebot_narrations_total",
			Help: "Total number of narration syntheses",
		},
		[]string{"language", "status"},
	)

	NarrationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviebot_narration_duration_seconds",
			Help:    "Duration of speech synthesis in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviebot_recommendations_total",
			Help: "Total number of recommendation lookups",
		},
		[]string{"language", "result"}, // "found", "empty"
	)

	ArtifactLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviebot_artifact_loads_total",
			Help: "Total number of model artifact loads",
		},
		[]string{"artifact", "source", "status"}, // source: "disk", "hub"
	)

	TransientCleanupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviebot_transient_cleanups_total",
			Help: "Total number of transient audio cleanups",
		},
		[]string{"result"}, // "removed", "error"
	)
)

// Server exposes the default registry on /metrics.
type Server struct {
	srv *http.Server
}

func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe blocks until Shutdown is called.
func (s *Server) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
