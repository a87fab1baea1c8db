package middleware

import (
	"net/http"
	"sync"
	"time"

	"go_speak_review/internal/model"
	"go_speak_review/internal/webutil"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// 使われなくなったリミッタを掃除する間隔
const limiterIdleTTL = 10 * time.Minute

type speakerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SpeakerRateLimiter はスピーカー単位のトークンバケットを管理します
type SpeakerRateLimiter struct {
	mu        sync.Mutex
	limiters  map[uuid.UUID]*speakerLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewSpeakerRateLimiter(perSecond float64, burst int) *SpeakerRateLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	return &SpeakerRateLimiter{
		limiters: make(map[uuid.UUID]*speakerLimiter),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow は speakerID のリクエストを1件消費できるかを返します
func (l *SpeakerRateLimiter) Allow(speakerID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for id, sl := range l.limiters {
			if now.Sub(sl.lastSeen) > limiterIdleTTL {
				delete(l.limiters, id)
			}
		}
		l.lastSweep = now
	}

	sl, ok := l.limiters[speakerID]
	if !ok {
		sl = &speakerLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[speakerID] = sl
	}
	sl.lastSeen = now
	return sl.limiter.AllowN(now, 1)
}

// Middleware は上限を超えたリクエストに 429 を返します。認証ミドルウェアの後に配置すること
func (l *SpeakerRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		speakerID, err := GetSpeakerIDFromContext(r.Context())
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}

		if !l.Allow(speakerID) {
			w.Header().Set("Retry-After", "1")
			webutil.HandleError(w, logger, model.NewAppError(model.CodeRateLimited, "リクエストが多すぎます。しばらくしてから再試行してください。", "", model.ErrRateLimited))
			return
		}
		next.ServeHTTP(w, r)
	})
}
