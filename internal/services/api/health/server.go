package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alacase/backend/internal/domain/status"
)

const pingTimeout = 500 * time.Millisecond

type Server struct {
	store   status.Store
	clk     func() time.Time
	message string
	version string
}

func NewServer(store status.Store, message, version string, clk func() time.Time) *Server {
	if clk == nil {
		clk = func() time.Time { return time.Now().UTC() }
	}
	return &Server{store: store, clk: clk, message: message, version: version}
}

func (s *Server) Register(r gin.IRouter) {
	r.GET("/health", s.health)
	r.GET("/", s.root)
}

// health is a liveness probe: it always answers 200 and reports store
// connectivity as connected, disconnected (never configured) or error.
func (s *Server) health(c *gin.Context) {
	db := "disconnected"
	if s.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			db = "error"
		} else {
			db = "connected"
		}
	}

	st := "healthy"
	if db != "connected" {
		st = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    st,
		"database":  db,
		"timestamp": s.clk().Format(time.RFC3339Nano),
	})
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": s.message,
		"version": s.version,
		"status":  "running",
	})
}
