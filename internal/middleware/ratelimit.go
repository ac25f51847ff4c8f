package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hitoshi/jobboard/internal/model"
)

// RateLimiterConfig はレート制限の設定を保持する。
type RateLimiterConfig struct {
	GeneralRate     rate.Limit    // API全般のレート（req/sec）。120/60 = 2 req/sec
	GeneralBurst    int           // API全般のバーストサイズ
	LoginRate       rate.Limit    // ログイン試行のレート（req/sec）。10/60
	LoginBurst      int           // ログイン試行のバーストサイズ
	CleanupInterval time.Duration // 期限切れエントリのクリーンアップ間隔
}

// DefaultRateLimiterConfig はデフォルトのレート制限設定を返す。
// API全般 120 req/min、ログイン試行 10 req/min（総当たり対策）をクライアントIPごとに適用する。
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(120.0 / 60.0), // 2 req/sec
		GeneralBurst:    120,
		LoginRate:       rate.Limit(10.0 / 60.0), // ~0.167 req/sec
		LoginBurst:      10,
		CleanupInterval: 5 * time.Minute,
	}
}

// clientLimiter はクライアントごとのレートリミッターとアクセス時刻を保持する。
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// limiterGroup は1種類のレート制限に対するクライアント別リミッター群。
type limiterGroup struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rateVal  rate.Limit
	burst    int
}

// get はクライアントキーのリミッターを取得または作成する。
func (g *limiterGroup) get(key string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cl, exists := g.limiters[key]; exists {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(g.rateVal, g.burst)
	g.limiters[key] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}
	return limiter
}

// cleanup は最終アクセス時刻がttlを超えたエントリを削除する。
func (g *limiterGroup) cleanup(ttl time.Duration) {
	now := time.Now()

	g.mu.Lock()
	defer g.mu.Unlock()
	for key, cl := range g.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(g.limiters, key)
		}
	}
}

// count は現在管理されているエントリ数を返す。
func (g *limiterGroup) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.limiters)
}

// RateLimiter はクライアントIPごとのレート制限を管理する。
// このAPIはセッションを持たないため、制限キーにはクライアントIPを使用する。
// API全般のレート制限とログイン試行のレート制限の2種類を提供する。
type RateLimiter struct {
	config  RateLimiterConfig
	general *limiterGroup
	login   *limiterGroup
	stopCh  chan struct{}
}

// NewRateLimiter は新しいRateLimiterを生成する。
// バックグラウンドで期限切れエントリのクリーンアップを開始する。
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config: config,
		general: &limiterGroup{
			limiters: make(map[string]*clientLimiter),
			rateVal:  config.GeneralRate,
			burst:    config.GeneralBurst,
		},
		login: &limiterGroup{
			limiters: make(map[string]*clientLimiter),
			rateVal:  config.LoginRate,
			burst:    config.LoginBurst,
		},
		stopCh: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop はクリーンアップのバックグラウンドゴルーチンを停止する。
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// GeneralMiddleware はAPI全般のレート制限ミドルウェアを返す。
func (rl *RateLimiter) GeneralMiddleware() func(next http.Handler) http.Handler {
	return rl.middleware(rl.general, rl.config.GeneralRate, "general")
}

// LoginMiddleware はログイン試行専用のレート制限ミドルウェアを返す。
// API全般のレート制限とは独立に動作する。
func (rl *RateLimiter) LoginMiddleware() func(next http.Handler) http.Handler {
	return rl.middleware(rl.login, rl.config.LoginRate, "login")
}

// GeneralLimiterCount は現在管理されているAPI全般リミッターのエントリ数を返す。
// テストおよびメトリクス用。
func (rl *RateLimiter) GeneralLimiterCount() int {
	return rl.general.count()
}

// LoginLimiterCount は現在管理されているログインリミッターのエントリ数を返す。
// テストおよびメトリクス用。
func (rl *RateLimiter) LoginLimiterCount() int {
	return rl.login.count()
}

// middleware は指定されたリミッター群によるレート制限ミドルウェアを生成する。
func (rl *RateLimiter) middleware(group *limiterGroup, r rate.Limit, limitType string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			key := clientIP(req)

			if !group.get(key).Allow() {
				writeRateLimitResponse(w, r)
				slog.Warn("rate limit exceeded",
					slog.String("client_ip", key),
					slog.String("limit_type", limitType),
				)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// cleanupLoop はバックグラウンドで期限切れエントリを定期的にクリーンアップする。
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ttl := rl.config.CleanupInterval * 2
			rl.general.cleanup(ttl)
			rl.login.cleanup(ttl)
		case <-rl.stopCh:
			return
		}
	}
}

// clientIP はリクエストからクライアントIPを取り出す。
// ポート部を除去し、解釈できない場合はRemoteAddr全体をキーとして使う。
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeRateLimitResponse は429 Too Many Requestsレスポンスを書き込む。
// Retry-Afterヘッダーにはトークンが補充されるまでの推定秒数を設定する。
func writeRateLimitResponse(w http.ResponseWriter, r rate.Limit) {
	// Retry-Afterの算出: 1トークンが補充されるまでの秒数
	retryAfterSec := int(math.Ceil(1.0 / float64(r)))
	if retryAfterSec < 1 {
		retryAfterSec = 1
	}

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSec))
	WriteErrorResponse(w, http.StatusTooManyRequests, &model.APIError{
		Code:     "RATE_LIMIT_EXCEEDED",
		Message:  "リクエストが多すぎます。",
		Category: "system",
		Action:   "しばらく待ってから再度お試しください。",
	})
}
