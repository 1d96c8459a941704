package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alacase/backend/internal/domain/status"
)

func TestPutListRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	ts := time.Date(2025, 6, 1, 12, 30, 45, 123456789, time.UTC)

	require.NoError(t, s.Put(ctx, &status.Check{ID: "a", ClientName: "Test Client", Timestamp: ts}))

	recs, skipped, err := s.List(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, recs, 1)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "Test Client", recs[0].ClientName)
	assert.True(t, recs[0].Timestamp.Equal(ts), "timestamp must survive the textual boundary")
}

func TestListKeepsInsertionOrderAndHonorsLimit(t *testing.T) {
	s := New()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Put(ctx, &status.Check{
			ID:        fmt.Sprintf("id-%d", i),
			Timestamp: time.Now().UTC(),
		}))
	}

	recs, _, err := s.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "id-0", recs[0].ID)
	assert.Equal(t, "id-2", recs[2].ID)
}

func TestPutSameIDReplaces(t *testing.T) {
	s := New()
	ctx := context.Background()
	ts := time.Now().UTC()

	require.NoError(t, s.Put(ctx, &status.Check{ID: "a", ClientName: "one", Timestamp: ts}))
	require.NoError(t, s.Put(ctx, &status.Check{ID: "a", ClientName: "two", Timestamp: ts}))

	recs, _, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "two", recs[0].ClientName)
}

func TestListSkipsMalformedTimestamps(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, &status.Check{ID: "good", Timestamp: time.Now().UTC()}))

	s.mu.Lock()
	s.index["bad"] = len(s.docs)
	s.docs = append(s.docs, document{id: "bad", timestamp: "not-a-timestamp"})
	s.mu.Unlock()

	recs, skipped, err := s.List(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, recs, 1)
	assert.Equal(t, "good", recs[0].ID)
}
