package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc1234"))
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"syncctl"}, args...))
	return out.String(), err
}

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_DB_DATABASE_URI", "sqlite://:memory:")
	t.Setenv("REMOTE_BASE_URL", "http://sheets.local")
	t.Setenv("APP_TOKEN_ISSUER", "go-sheet-sync")
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.0.0")
	assert.Contains(t, out, "Build commit: abc1234")
}

func TestTokenCommand(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("APP_TOKEN_SIGN_KEY", "cli-secret")

	out, err := runApp(t, "token", "--operator", "ops", "--ttl", "1h")
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(strings.TrimSpace(out), "cli-secret", "go-sheet-sync")
	require.NoError(t, err)
	assert.Equal(t, "ops", token.Operator)
}

func TestTokenCommand_NoSignKey(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("APP_TOKEN_SIGN_KEY", "")

	_, err := runApp(t, "token", "--operator", "ops")

	assert.ErrorIs(t, err, errTokenSignKeyNotSet)
}

func TestEntitiesCommand(t *testing.T) {
	setMinimalEnv(t)

	out, err := runApp(t, "entities")

	require.NoError(t, err)
	assert.Contains(t, out, "directors")
}

func TestStatusCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/uploads/status", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		utils.WriteJSON(w, models.UploadQueueStatus{
			Depth:    1,
			InFlight: true,
			Pending: []models.UploadTaskSummary{
				{ID: "t1", Name: "statement.pdf", State: models.UploadInFlight},
				{ID: "t2", Name: "id.png", State: models.UploadQueued},
			},
		}, http.StatusOK)
	}))
	defer srv.Close()

	out, err := runApp(t, "status", "--server", srv.URL, "--token", "tkn")

	require.NoError(t, err)
	assert.Contains(t, out, "queued: 1  in flight: true")
	assert.Contains(t, out, "statement.pdf")
	assert.Contains(t, out, "id.png")
}

func TestStatusCommand_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid token"}, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := runApp(t, "status", "--server", srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestSyncCommand_ParentNeedsEntity(t *testing.T) {
	_, err := runApp(t, "sync", "--parent", "APP-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--parent requires --entity")
}

func TestProgressBar(t *testing.T) {
	t.Run("quiet writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newBar(&buf, "directors", true)
		bar.progress(1, 2)
		bar.finish()

		assert.Empty(t, buf.String())
	})

	t.Run("renders entity and counters", func(t *testing.T) {
		var buf bytes.Buffer
		bar := newBar(&buf, "directors", false)
		bar.progress(1, 2)
		bar.progress(2, 2)
		time.Sleep(10 * time.Millisecond)
		bar.finish()

		assert.Contains(t, buf.String(), "directors")
		assert.Contains(t, buf.String(), "2 / 2")
	})

	t.Run("finish without progress", func(t *testing.T) {
		bar := newBar(&bytes.Buffer{}, "directors", false)
		assert.NotPanics(t, bar.finish)
	})
}

func TestEntityBars_SwitchesPerEntity(t *testing.T) {
	var buf bytes.Buffer
	bars := newEntityBars(&buf, false)

	bars.progress("directors", 1, 1)
	first := bars.current
	bars.progress("additional_debts", 1, 3)
	bars.finish()

	assert.NotSame(t, first, bars.current)
	assert.Equal(t, "additional_debts", bars.current.entity)
	assert.Contains(t, buf.String(), "directors")
	assert.Contains(t, buf.String(), "additional_debts")
}
