package payments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alacase/backend/internal/domain/payment"
	"github.com/alacase/backend/internal/domain/validation"
	"github.com/alacase/backend/internal/obs"
)

type Server struct {
	log       *zap.Logger
	proc      payment.Processor
	maxAmount int64
}

func NewServer(log *zap.Logger, proc payment.Processor, maxAmount int64) *Server {
	return &Server{log: log, proc: proc, maxAmount: maxAmount}
}

func (s *Server) Register(r gin.IRouter) {
	r.POST("/payments/create-intent", s.createIntent)
}

func (s *Server) createIntent(c *gin.Context) {
	var req payment.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, validation.FromBindError(err))
		return
	}
	req.Normalize()
	if err := req.Validate(s.maxAmount); err != nil {
		s.fail(c, err)
		return
	}

	intent, err := s.proc.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err)
		return
	}

	obs.WithTrace(c.Request.Context(), s.log).Info("payment intent created",
		zap.String("id", intent.ID))

	// Both secret spellings are emitted; older mobile clients read the
	// camelCase one.
	c.JSON(http.StatusOK, gin.H{
		"client_secret": intent.ClientSecret,
		"clientSecret":  intent.ClientSecret,
		"id":            intent.ID,
	})
}

func (s *Server) fail(c *gin.Context, err error) {
	log := obs.WithTrace(c.Request.Context(), s.log)

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		log.Info("payment request rejected",
			zap.String("kind", "validation"), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": verr.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, payment.ErrDeclined):
		log.Info("payment request rejected",
			zap.String("kind", "card_declined"), zap.Error(err))
		c.JSON(http.StatusPaymentRequired, gin.H{"detail": "Card was declined"})
	case errors.Is(err, payment.ErrInvalidRequest):
		log.Info("payment request rejected",
			zap.String("kind", "invalid_request"), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid payment amount or currency"})
	case errors.Is(err, payment.ErrNotConfigured):
		log.Error("payment request failed",
			zap.String("kind", "not_configured"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	default:
		log.Error("payment request failed",
			zap.String("kind", "processor_error"), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	}
}
