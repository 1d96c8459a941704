package payment

import (
	"fmt"
	"regexp"

	"github.com/alacase/backend/internal/domain/validation"
)

const DefaultCurrency = "eur"

var currencyPattern = regexp.MustCompile(`^[a-z]{3}$`)

// IntentRequest describes a payment to authorize. Amount is in currency
// minor units (880 means 8.80 EUR). The resulting payment object lives
// entirely inside the processor; nothing here is persisted.
type IntentRequest struct {
	Amount   *int64            `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Normalize fills defaults the wire format allows callers to omit.
func (r *IntentRequest) Normalize() {
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
}

func (r *IntentRequest) Validate(maxAmount int64) error {
	var verr validation.Error
	switch {
	case r.Amount == nil:
		verr.Add("amount", "required")
	case *r.Amount <= 0:
		verr.Add("amount", "must be a positive integer")
	case maxAmount > 0 && *r.Amount > maxAmount:
		verr.Add("amount", fmt.Sprintf("must not exceed %d", maxAmount))
	}
	if !currencyPattern.MatchString(r.Currency) {
		verr.Add("currency", "must be a 3-letter lowercase ISO 4217 code")
	}
	if verr.Empty() {
		return nil
	}
	return &verr
}

// Intent is the processor's answer: an id plus the client-redeemable secret.
type Intent struct {
	ID           string
	ClientSecret string
}
