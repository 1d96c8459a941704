package status

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alacase/backend/internal/domain/status"
)

const defaultListCap = 1000

// Usecase runs the validate -> assign identity -> persist flow. The id and
// clock sources are injectable so creation is deterministic under test; nil
// picks the production sources.
type Usecase struct {
	store   status.Store
	newID   func() string
	clk     func() time.Time
	listCap int
}

func NewUsecase(store status.Store, listCap int, newID func() string, clk func() time.Time) *Usecase {
	if newID == nil {
		newID = uuid.NewString
	}
	if clk == nil {
		clk = func() time.Time { return time.Now().UTC() }
	}
	if listCap <= 0 {
		listCap = defaultListCap
	}
	return &Usecase{store: store, newID: newID, clk: clk, listCap: listCap}
}

func (u *Usecase) Create(ctx context.Context, in *status.CreateInput) (*status.Check, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if u.store == nil {
		return nil, status.ErrUnavailable
	}
	c := &status.Check{
		ID:         u.newID(),
		ClientName: *in.ClientName,
		Timestamp:  u.clk(),
	}
	if err := u.store.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns up to limit records in storage order; limit values outside
// (0, cap] are clamped to the cap. The second result counts stored records
// that no longer decode and were skipped.
func (u *Usecase) List(ctx context.Context, limit int) ([]*status.Check, int, error) {
	if u.store == nil {
		return nil, 0, status.ErrUnavailable
	}
	if limit <= 0 || limit > u.listCap {
		limit = u.listCap
	}
	recs, skipped, err := u.store.List(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	if recs == nil {
		recs = []*status.Check{}
	}
	return recs, skipped, nil
}
