//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/config"
	"github.com/MGTheTrain/cryptovault/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)
	r.POST("/echo", func(ctx *gin.Context) {
		var body map[string]string
		if err := ctx.ShouldBindJSON(&body); err != nil {
			status := http.StatusBadRequest
			if strings.Contains(err.Error(), "too large") {
				status = http.StatusRequestEntityTooLarge
			}
			ctx.Status(status)
			return
		}
		ctx.Status(http.StatusOK)
	})
	return r
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := newEchoRouter(RequestID(testutil.SetupTestLogger(t)))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`))
	r.ServeHTTP(w, req)

	requestID := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)
}

func TestRequestID_ReusesValidIncomingID(t *testing.T) {
	r := newEchoRouter(RequestID(testutil.SetupTestLogger(t)))
	incoming := uuid.NewString()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`))
	req.Header.Set(RequestIDHeader, incoming)
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`))
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestBodyLimit(t *testing.T) {
	r := newEchoRouter(BodyLimit(32))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{"a":"b"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{"a":"`+strings.Repeat("x", 64)+`"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRateLimit_PerClient(t *testing.T) {
	r := newEchoRouter(RateLimit(1, 2))

	send := func(remoteAddr string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString(`{}`))
		req.RemoteAddr = remoteAddr
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"), "buckets are per client")
}

func TestRateLimit_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	mockService := new(MockCryptoService)
	mockService.On("Algorithms").Return(cryptoalg.Catalogue{})

	cfg := testRestConfig()
	cfg.Security.RateLimiting = config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 2}
	r := newTestRouter(t, cfg, mockService, testutil.SetupTestLogger(t), nil)

	send := func(forwardedFor string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, BasePath+"/algorithms", nil)
		req.RemoteAddr = "203.0.113.7:4321"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("1.1.1.1"))
	assert.Equal(t, http.StatusOK, send("2.2.2.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("3.3.3.3"), "rotating X-Forwarded-For must not mint new buckets")
}

func TestRateLimit_HonoursForwardedForFromTrustedProxy(t *testing.T) {
	mockService := new(MockCryptoService)
	mockService.On("Algorithms").Return(cryptoalg.Catalogue{})

	cfg := testRestConfig()
	cfg.Security.RateLimiting = config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 1}
	cfg.Security.TrustedProxies = []string{"10.0.0.0/8"}
	r := newTestRouter(t, cfg, mockService, testutil.SetupTestLogger(t), nil)

	send := func(forwardedFor string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, BasePath+"/algorithms", nil)
		req.RemoteAddr = "10.0.0.5:4321"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"), "clients behind a trusted proxy get their own bucket")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	limiter := newRateLimiter(60, 1)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.allow("a"))
	require.False(t, limiter.allow("a"))
	assert.Len(t, limiter.clients, 1)

	now = now.Add(2 * clientIdleTTL)
	require.True(t, limiter.allow("b"))
	assert.Len(t, limiter.clients, 1)
	_, ok := limiter.clients["a"]
	assert.False(t, ok)
}
