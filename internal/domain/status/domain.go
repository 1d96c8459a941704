package status

import (
	"time"

	"github.com/alacase/backend/internal/domain/validation"
)

// Check is a client check-in record. ID and Timestamp are assigned by the
// server at creation and never change afterwards.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// TimeLayout is the textual timestamp form used at the store boundary; the
// store has no temporal type, so values must survive a format/parse cycle.
const TimeLayout = time.RFC3339Nano

type CreateInput struct {
	ClientName *string `json:"client_name"`
}

func (in *CreateInput) Validate() error {
	var verr validation.Error
	if in.ClientName == nil {
		verr.Add("client_name", "required")
	}
	if verr.Empty() {
		return nil
	}
	return &verr
}
