package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t, "")
	m.appInfo.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{
		Version:     "1.2.0",
		BuildDate:   "2026-10-01",
		BuildCommit: "abc1234",
	})

	rec := serve(h, http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"1.2.0","build_date":"2026-10-01","build_commit":"abc1234"}`, rec.Body.String())
}
