package v1

import (
	"net/http"
	"sync"
	"time"

	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	clientIdleTTL = 10 * time.Minute
)

// RequestID tags each request with an id, echoes it in the response and logs the access line.
// An incoming X-Request-ID is reused when it is a valid UUID.
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)

		start := time.Now()
		ctx.Next()

		log.Info(ctx.Request.Method, " ", ctx.Request.URL.Path, " ", ctx.Writer.Status(), " ", time.Since(start), " request_id=", requestID)
	}
}

// BodyLimit caps the request body at maxBytes
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		}
		ctx.Next()
	}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(float64(requestsPerMin) / 60),
		burst:   burst,
		now:     time.Now,
	}
}

func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > clientIdleTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > clientIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// RateLimit rejects clients exceeding requestsPerMin (with the given burst) with 429.
// Clients are keyed by gin ClientIP, so the engine's trusted proxies decide whether X-Forwarded-For counts.
func RateLimit(requestsPerMin, burst int) gin.HandlerFunc {
	limiter := newRateLimiter(requestsPerMin, burst)
	return rateLimitWith(limiter)
}

func rateLimitWith(limiter *rateLimiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !limiter.allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, Response{Success: false, Error: "rate limit exceeded"})
			return
		}
		ctx.Next()
	}
}
