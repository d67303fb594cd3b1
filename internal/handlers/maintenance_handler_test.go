package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/common"
	"github.com/ternarybob/specula/internal/services/scheduler"
	badgerstore "github.com/ternarybob/specula/internal/storage/badger"
)

func setupMaintenanceHandler(t *testing.T) *MaintenanceHandler {
	t.Helper()

	logger := arbor.NewLogger()
	db, err := badgerstore.NewBadgerDB(logger, &common.BadgerConfig{
		Path: filepath.Join(t.TempDir(), "data"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sched := scheduler.NewScheduler(badgerstore.NewHistoryStorage(db, logger), db, logger)
	return NewMaintenanceHandler(sched, logger)
}

func TestMaintenanceRunHandler(t *testing.T) {
	handler := setupMaintenanceHandler(t)

	req := httptest.NewRequest("POST", "/api/maintenance/run", nil)
	rec := httptest.NewRecorder()
	handler.RunHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
}

func TestMaintenanceRunHandler_RejectsWrongMethod(t *testing.T) {
	handler := setupMaintenanceHandler(t)

	req := httptest.NewRequest("GET", "/api/maintenance/run", nil)
	rec := httptest.NewRecorder()
	handler.RunHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
