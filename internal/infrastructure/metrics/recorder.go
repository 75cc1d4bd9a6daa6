// Package metrics は usecase.Metrics をPrometheusのコレクターとして実装する。
package metrics

import (
	"strconv"
	"time"

	"github.com/na2na-p/terabridge/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "terabridge"

var _ usecase.Metrics = (*Recorder)(nil)

type Recorder struct {
	admissions    *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	transfers     *prometheus.CounterVec
	transferBytes prometheus.Counter
	broadcasts    *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder は reg にコレクターを登録する。テストでは prometheus.NewRegistry() を渡す
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		admissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admission_decisions_total",
			Help:      "Admission decisions by capability and outcome.",
		}, []string{"capability", "outcome"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Share link resolutions by outcome.",
		}, []string{"outcome"}),
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Finished transfers by outcome.",
		}, []string{"outcome"}),
		transferBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_bytes_total",
			Help:      "Bytes delivered by successful transfers.",
		}),
		broadcasts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcast_deliveries_total",
			Help:      "Broadcast deliveries by outcome.",
		}, []string{"outcome"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests to the ops server.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency of the ops server.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func (r *Recorder) AdmissionDecided(capability usecase.Capability, outcome string) {
	r.admissions.WithLabelValues(string(capability), outcome).Inc()
}

func (r *Recorder) ResolutionFinished(outcome string) {
	r.resolutions.WithLabelValues(outcome).Inc()
}

// TransferFinished は成功時のみバイト数を加算する
func (r *Recorder) TransferFinished(outcome string, bytes int64) {
	r.transfers.WithLabelValues(outcome).Inc()
	if bytes > 0 {
		r.transferBytes.Add(float64(bytes))
	}
}

func (r *Recorder) BroadcastDelivered(outcome string) {
	r.broadcasts.WithLabelValues(outcome).Inc()
}

// ObserveHTTP は path にルートのパターンを渡すこと
func (r *Recorder) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
