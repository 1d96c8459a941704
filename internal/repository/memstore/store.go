package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/alacase/backend/internal/domain/status"
)

var _ status.Store = (*Store)(nil)

// Store is an in-process stand-in for the document store, used for local
// development and tests. Records cross the same textual timestamp boundary
// as the real store so round-trip behavior matches.
type Store struct {
	mu    sync.Mutex
	docs  []document
	index map[string]int
}

type document struct {
	id         string
	clientName string
	timestamp  string
}

func New() *Store {
	return &Store{index: make(map[string]int)}
}

func (s *Store) Put(_ context.Context, c *status.Check) error {
	doc := document{
		id:         c.ID,
		clientName: c.ClientName,
		timestamp:  c.Timestamp.Format(status.TimeLayout),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[doc.id]; ok {
		s.docs[i] = doc
		return nil
	}
	s.index[doc.id] = len(s.docs)
	s.docs = append(s.docs, doc)
	return nil
}

func (s *Store) List(_ context.Context, limit int) ([]*status.Check, int, error) {
	if limit <= 0 {
		limit = 1000
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*status.Check, 0, min(limit, len(s.docs)))
	skipped := 0
	for _, d := range s.docs {
		if len(out) >= limit {
			break
		}
		ts, err := time.Parse(status.TimeLayout, d.timestamp)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, &status.Check{ID: d.id, ClientName: d.clientName, Timestamp: ts})
	}
	return out, skipped, nil
}

func (s *Store) Ping(context.Context) error { return nil }
