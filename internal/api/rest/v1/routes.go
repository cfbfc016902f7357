package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/config"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, cryptoService cryptoalg.CryptoService, log logger.Logger) {
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group(BasePath) // lookup in version file

	cryptoHandler := NewCryptoHandler(cryptoService, log)
	v1.POST("/encrypt", cryptoHandler.Encrypt)
	v1.POST("/decrypt", cryptoHandler.Decrypt)
	v1.POST("/hash", cryptoHandler.Hash)
	v1.POST("/generate-key", cryptoHandler.GenerateKey)
	v1.POST("/sign", cryptoHandler.Sign)
	v1.POST("/verify", cryptoHandler.Verify)
	v1.GET("/algorithms", cryptoHandler.Algorithms)
}

// NewRouter builds the engine with middleware taken from cfg. metricsHandler is mounted at
// cfg.Metrics.Path when metrics are enabled and the handler is non-nil.
// Client addresses come from X-Forwarded-For only when the peer is one of cfg.Security.TrustedProxies.
func NewRouter(cfg *config.RestConfig, cryptoService cryptoalg.CryptoService, log logger.Logger, metricsHandler http.Handler) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), RequestID(log))

	corsCfg := cfg.Security.CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsCfg.AllowedOrigins,
		AllowMethods:     corsCfg.AllowedMethods,
		AllowHeaders:     corsCfg.AllowedHeaders,
		ExposeHeaders:    corsCfg.ExposeHeaders,
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	}))

	if cfg.Metrics.Enabled && metricsHandler != nil {
		r.GET(cfg.Metrics.Path, gin.WrapH(metricsHandler))
	}

	if rl := cfg.Security.RateLimiting; rl.Enabled {
		r.Use(RateLimit(rl.RequestsPerMin, rl.Burst))
	}
	r.Use(BodyLimit(cfg.Limits.MaxBodyBytes))

	SetupRoutes(r, cryptoService, log)
	return r, nil
}
