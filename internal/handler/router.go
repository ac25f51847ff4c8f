package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/jobboard/internal/metrics"
	"github.com/hitoshi/jobboard/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter

	// メトリクス（nilの場合はメトリクス収集を行わない）
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer

	// ドメインサービス
	JobService  JobServiceInterface
	AuthService AuthServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	CORS → SecurityHeaders → Recovery → Logging → Metrics
//
// レート制限はAPIルートにのみ適用し、ログインには専用の制限を追加する。
// /health と /metrics はレート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewLoggingMiddleware(slog.Default()))

	var jobMetrics JobMetricsRecorder
	var loginMetrics LoginMetricsRecorder
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
		jobMetrics = deps.Metrics
		loginMetrics = deps.Metrics
	}

	jobHandler := NewJobHandler(deps.JobService, jobMetrics)
	authHandler := NewAuthHandler(deps.AuthService, loginMetrics)

	// 運用エンドポイント（レート制限の対象外）
	r.Get("/health", healthHandler)
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	r.Route("/api", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		// 求人管理
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.ListJobs)
			// /jobs/filter は /jobs/{id} より静的パスとして優先マッチする
			r.Get("/filter", jobHandler.FilterJobs)
			r.Post("/", jobHandler.CreateJob)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", jobHandler.GetJob)
				r.Put("/", jobHandler.UpdateJob)
				r.Delete("/", jobHandler.DeleteJob)
			})
		})

		// 認証（ログイン専用レート制限を追加）
		r.Route("/auth", func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.With(deps.RateLimiter.LoginMiddleware()).Post("/login", authHandler.Login)
			} else {
				r.Post("/login", authHandler.Login)
			}
		})
	})

	return r
}

// healthHandler はプロセスの生存確認に応答する。
// GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
