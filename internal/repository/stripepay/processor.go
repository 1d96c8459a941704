package stripepay

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/alacase/backend/internal/domain/payment"
)

var _ payment.Processor = (*Processor)(nil)

type Processor struct {
	api *client.API
}

// New builds a Stripe-backed processor. An empty key yields a processor that
// rejects every request with payment.ErrNotConfigured rather than failing
// startup; the rest of the API stays usable without payments.
func New(secretKey string) *Processor {
	if secretKey == "" {
		return &Processor{}
	}
	return &Processor{api: client.New(secretKey, nil)}
}

func (p *Processor) CreateIntent(ctx context.Context, req *payment.IntentRequest) (*payment.Intent, error) {
	if p.api == nil {
		return nil, payment.ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(*req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, mapErr(err)
	}
	return &payment.Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func mapErr(err error) error {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		return err
	}
	switch sErr.Type {
	case stripe.ErrorTypeCard:
		return fmt.Errorf("%w: %s", payment.ErrDeclined, sErr.Msg)
	case stripe.ErrorTypeInvalidRequest:
		return fmt.Errorf("%w: %s", payment.ErrInvalidRequest, sErr.Msg)
	default:
		return err
	}
}
