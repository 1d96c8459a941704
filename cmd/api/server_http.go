package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/alacase/backend/internal/config"
	"github.com/alacase/backend/internal/domain/status"
	"github.com/alacase/backend/internal/obs"
	"github.com/alacase/backend/internal/repository/stripepay"
	healthsvc "github.com/alacase/backend/internal/services/api/health"
	paymentssvc "github.com/alacase/backend/internal/services/api/payments"
	statussvc "github.com/alacase/backend/internal/services/api/status"
)

func buildHTTPServer(cfg *config.Config, logger *zap.Logger, store status.Store) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(obs.HTTPMetrics())
	r.Use(cors(cfg.Server.AllowedOrigins))

	statusUC := statussvc.NewUsecase(store, cfg.Status.ListCap, nil, nil)
	statussvc.NewServer(logger, statusUC).Register(r)

	proc := stripepay.New(cfg.Stripe.SecretKey)
	paymentssvc.NewServer(logger, proc, cfg.Stripe.MaxAmount).Register(r)

	healthsvc.NewServer(store, cfg.App.Name, cfg.App.Version, nil).Register(r)

	r.GET("/metrics", gin.WrapH(obs.MetricsHandler()))

	return &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}

func cors(origins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
				c.Header("Vary", "Origin")
			}
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
