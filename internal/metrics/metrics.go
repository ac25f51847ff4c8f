// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやミドルウェアから利用する。
type MetricsCollector interface {
	RecordHTTPStatus(statusCode int)
	RecordRequestDuration(duration time.Duration)
	RecordJobCreated()
	RecordJobUpdated()
	RecordJobDeleted()
	RecordLoginFailure()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
	jobsCreated     prometheus.Counter
	jobsUpdated     prometheus.Counter
	jobsDeleted     prometheus.Counter
	loginFailures   prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobboard_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobboard_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		jobsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobboard_jobs_created_total",
			Help: "作成された求人の合計数",
		}),
		jobsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobboard_jobs_updated_total",
			Help: "更新された求人の合計数",
		}),
		jobsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobboard_jobs_deleted_total",
			Help: "削除された求人の合計数",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobboard_login_failure_total",
			Help: "ログイン失敗の合計数",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestDuration,
		c.jobsCreated,
		c.jobsUpdated,
		c.jobsDeleted,
		c.loginFailures,
	)

	return c
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// RecordJobCreated は求人の作成を記録する。
func (c *Collector) RecordJobCreated() {
	c.jobsCreated.Inc()
}

// RecordJobUpdated は求人の更新を記録する。
func (c *Collector) RecordJobUpdated() {
	c.jobsUpdated.Inc()
}

// RecordJobDeleted は求人の削除を記録する。
func (c *Collector) RecordJobDeleted() {
	c.jobsDeleted.Inc()
}

// RecordLoginFailure はログイン失敗を記録する。
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
