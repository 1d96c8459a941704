package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alacase/backend/internal/domain/status"
	"github.com/alacase/backend/internal/repository/memstore"
)

type downStore struct{}

func (downStore) Put(context.Context, *status.Check) error { return nil }
func (downStore) List(context.Context, int) ([]*status.Check, int, error) {
	return nil, 0, nil
}
func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func get(t *testing.T, store status.Store, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewServer(store, "API Mise en Relation", "1.0.0", nil).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) (string, string, string) {
	t.Helper()
	var resp struct {
		Status    string `json:"status"`
		Database  string `json:"database"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Status, resp.Database, resp.Timestamp
}

func TestHealthConnected(t *testing.T) {
	w := get(t, memstore.New(), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	st, db, ts := decodeHealth(t, w)
	assert.Equal(t, "healthy", st)
	assert.Equal(t, "connected", db)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestHealthDisconnectedWithoutStore(t *testing.T) {
	w := get(t, nil, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	st, db, _ := decodeHealth(t, w)
	assert.Equal(t, "degraded", st)
	assert.Equal(t, "disconnected", db)
}

func TestHealthErrorOnFailingPing(t *testing.T) {
	w := get(t, downStore{}, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	_, db, _ := decodeHealth(t, w)
	assert.Equal(t, "error", db)
}

func TestRoot(t *testing.T) {
	w := get(t, memstore.New(), "/")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Version string `json:"version"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API Mise en Relation", resp.Message)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "running", resp.Status)
}
