package payment

import (
	"context"
	"errors"
)

var (
	ErrDeclined       = errors.New("card was declined")
	ErrInvalidRequest = errors.New("invalid payment amount or currency")
	ErrNotConfigured  = errors.New("payment processor not configured")
)

type Processor interface {
	CreateIntent(ctx context.Context, req *IntentRequest) (*Intent, error)
}
