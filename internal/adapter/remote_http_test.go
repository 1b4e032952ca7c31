// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var directorsSheet = models.Sheet{Name: "directors", IDColumn: "ID", AcceptsProposedID: true}

// newTestStore creates an httpRemoteStore pointed at the test server.
func newTestStore(t *testing.T, serverURL string) *httpRemoteStore {
	t.Helper()
	cfg := config.Remote{BaseURL: serverURL, APIKey: "secret", RequestTimeout: 2 * time.Second}

	s, err := NewHTTPRemoteStore(cfg, logger.Nop())
	require.NoError(t, err)
	return s.(*httpRemoteStore)
}

func decodeRowRequest(t *testing.T, r *http.Request) rowRequest {
	t.Helper()
	var body rowRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

// ── ListAll ─────────────────────────────────────────────────────────────────

func TestListAll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sheets/directors/rows", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rows":[{"ID":"1","Name":"Ann"},{"ID":"2","Name":"Bob"}]}`))
	}))
	defer srv.Close()

	rows, err := newTestStore(t, srv.URL).ListAll(context.Background(), directorsSheet)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ann", rows[0]["Name"])
	assert.Equal(t, "2", rows[1].ID("ID"))
}

func TestListAll_EmptySheet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rows, err := newTestStore(t, srv.URL).ListAll(context.Background(), directorsSheet)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListAll_EscapesSheetName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sheets/credit applications/rows", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rows":[]}`))
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).ListAll(context.Background(), models.Sheet{Name: "credit applications", IDColumn: "ID"})
	require.NoError(t, err)
}

func TestListAll_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"too many requests", http.StatusTooManyRequests, ErrRemoteUnavailable},
		{"internal error", http.StatusInternalServerError, ErrRemoteUnavailable},
		{"unavailable", http.StatusServiceUnavailable, ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestStore(t, srv.URL).ListAll(context.Background(), directorsSheet)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListAll_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestStore(t, url).ListAll(context.Background(), directorsSheet)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

// ── Append ──────────────────────────────────────────────────────────────────

func TestAppend_SendsProposedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sheets/directors/rows", r.URL.Path)

		body := decodeRowRequest(t, r)
		assert.Equal(t, "0190-abc", body.ProposedID)
		assert.Equal(t, "ID", body.IDColumn)
		assert.Equal(t, "Ann", body.Row["Name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"row":{"ID":"0190-abc","Name":"Ann"}}`))
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).Append(context.Background(), directorsSheet, models.Row{"Name": "Ann"}, "0190-abc")

	require.NoError(t, err)
	assert.Equal(t, "0190-abc", got.ID("ID"))
}

func TestAppend_DropsProposalWhenSheetAssignsIDs(t *testing.T) {
	sheet := models.Sheet{Name: "additional_debts", IDColumn: "ID"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := decodeRowRequest(t, r)
		assert.Empty(t, body.ProposedID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"R-77"}`))
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).Append(context.Background(), sheet, models.Row{"Amount": "10"}, "0190-abc")

	require.NoError(t, err)
	assert.Equal(t, "R-77", got.ID("ID"))
	assert.Equal(t, "10", got["Amount"])
}

func TestAppend_NoIdentifierReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"row":{"Name":"Ann"}}`))
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Append(context.Background(), directorsSheet, models.Row{"Name": "Ann"}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAppend_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).Append(context.Background(), directorsSheet, models.Row{"Name": "Ann"}, "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── UpdateByIdentifier ──────────────────────────────────────────────────────

func TestUpdateByIdentifier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/sheets/directors/rows/42", r.URL.Path)

		body := decodeRowRequest(t, r)
		assert.Equal(t, "Ann", body.Row["Name"])
		assert.Empty(t, body.ProposedID)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).UpdateByIdentifier(context.Background(), directorsSheet, "42", models.Row{"Name": "Ann"})
	require.NoError(t, err)
}

func TestUpdateByIdentifier_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).UpdateByIdentifier(context.Background(), directorsSheet, "42", models.Row{"Name": "Ann"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowNotFound)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"http://sheets.local/api/", "http://sheets.local/api", false},
		{"sheets.local:8081", "http://sheets.local:8081", false},
		{"  https://x.io  ", "https://x.io", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRemoteStore_Backends(t *testing.T) {
	httpStore, err := NewRemoteStore(config.Remote{Backend: config.RemoteBackendHTTP, BaseURL: "localhost:1"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpRemoteStore{}, httpStore)

	wbStore, err := NewRemoteStore(config.Remote{Backend: config.RemoteBackendWorkbook, WorkbookPath: t.TempDir() + "/remote.xlsx"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &WorkbookRemoteStore{}, wbStore)

	_, err = NewRemoteStore(config.Remote{Backend: "carrier-pigeon"}, logger.Nop())
	assert.Error(t, err)
}
