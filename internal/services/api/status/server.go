package status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alacase/backend/internal/domain/status"
	"github.com/alacase/backend/internal/domain/validation"
	"github.com/alacase/backend/internal/obs"
)

type Server struct {
	log *zap.Logger
	uc  *Usecase
}

func NewServer(log *zap.Logger, uc *Usecase) *Server {
	return &Server{log: log, uc: uc}
}

func (s *Server) Register(r gin.IRouter) {
	r.POST("/status", s.create)
	r.GET("/status", s.list)
}

func (s *Server) create(c *gin.Context) {
	var in status.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, "create", validation.FromBindError(err))
		return
	}

	rec, err := s.uc.Create(c.Request.Context(), &in)
	if err != nil {
		s.fail(c, "create", err)
		return
	}

	obs.WithTrace(c.Request.Context(), s.log).Info("status check created",
		zap.String("id", rec.ID))
	c.JSON(http.StatusOK, rec)
}

func (s *Server) list(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr := &validation.Error{}
			verr.Add("limit", "must be an integer")
			s.fail(c, "list", verr)
			return
		}
		limit = n
	}

	recs, skipped, err := s.uc.List(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, "list", err)
		return
	}

	log := obs.WithTrace(c.Request.Context(), s.log)
	if skipped > 0 {
		log.Warn("skipped undecodable status checks", zap.Int("skipped", skipped))
		c.Header("X-Skipped-Records", strconv.Itoa(skipped))
	}
	log.Info("status checks listed", zap.Int("count", len(recs)))
	c.JSON(http.StatusOK, recs)
}

// fail maps every fault to exactly one boundary code with a detail message.
func (s *Server) fail(c *gin.Context, op string, err error) {
	log := obs.WithTrace(c.Request.Context(), s.log)

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		log.Info("status request rejected",
			zap.String("op", op), zap.String("kind", "validation"), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": verr.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, status.ErrUnavailable):
		log.Error("status request failed",
			zap.String("op", op), zap.String("kind", "storage_unavailable"), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})
	default:
		log.Error("status request failed",
			zap.String("op", op), zap.String("kind", "storage_error"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
