package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	rowsPath = "/sheets/{sheet}/rows"
	rowPath  = "/sheets/{sheet}/rows/{id}"
)

type rowsResponse struct {
	Rows []models.Row `json:"rows"`
}

type rowRequest struct {
	IDColumn   string     `json:"id_column"`
	ProposedID string     `json:"proposed_id,omitempty"`
	Row        models.Row `json:"row"`
}

type rowResponse struct {
	ID  string     `json:"id"`
	Row models.Row `json:"row"`
}

type httpRemoteStore struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the spreadsheet API implementation of
// [RemoteStore]. It normalises and validates cfg.BaseURL and bounds every
// call by cfg.RequestTimeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPRemoteStore(cfg config.Remote, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}

	return &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: strings.TrimSpace(cfg.APIKey),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListAll implements [RemoteStore] with GET /sheets/{sheet}/rows.
func (h *httpRemoteStore) ListAll(ctx context.Context, sheet models.Sheet) ([]models.Row, error) {
	var result rowsResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("sheet", sheet.Name).
		SetResult(&result).
		Get(rowsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list rows of %s: %w", ErrRemoteUnavailable, sheet.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list rows of %s: %w", sheet.Name, err)
	}

	if result.Rows == nil {
		return []models.Row{}, nil
	}
	return result.Rows, nil
}

// Append implements [RemoteStore] with POST /sheets/{sheet}/rows. The
// assigned identifier is taken from the returned row or, when the API only
// echoes it, from the top-level "id" field.
func (h *httpRemoteStore) Append(ctx context.Context, sheet models.Sheet, row models.Row, proposedID string) (models.Row, error) {
	var result rowResponse

	body := rowRequest{IDColumn: sheet.IDColumn, Row: row}
	if sheet.AcceptsProposedID {
		body.ProposedID = proposedID
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("sheet", sheet.Name).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(rowsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: append row to %s: %w", ErrRemoteUnavailable, sheet.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("append row to %s: %w", sheet.Name, err)
	}

	stored := result.Row
	if stored == nil {
		stored = make(models.Row, len(row)+1)
		for k, v := range row {
			stored[k] = v
		}
	}
	if stored.ID(sheet.IDColumn) == "" {
		stored[sheet.IDColumn] = strings.TrimSpace(result.ID)
	}
	if stored.ID(sheet.IDColumn) == "" {
		return nil, fmt.Errorf("%w: append to %s returned no identifier", ErrInvalidResponse, sheet.Name)
	}

	h.logger.Debug().
		Str("func", "httpRemoteStore.Append").
		Str("sheet", sheet.Name).
		Str("remote_id", stored.ID(sheet.IDColumn)).
		Msg("row appended")

	return stored, nil
}

// UpdateByIdentifier implements [RemoteStore] with
// PUT /sheets/{sheet}/rows/{id}. A 404 maps to [ErrRowNotFound].
func (h *httpRemoteStore) UpdateByIdentifier(ctx context.Context, sheet models.Sheet, id string, row models.Row) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"sheet": sheet.Name, "id": id}).
		SetHeader("Content-Type", "application/json").
		SetBody(rowRequest{IDColumn: sheet.IDColumn, Row: row}).
		Put(rowPath)
	if err != nil {
		return fmt.Errorf("%w: update row %s of %s: %w", ErrRemoteUnavailable, id, sheet.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("update row %s of %s: %w", id, sheet.Name, err)
	}

	return nil
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+h.apiKey)
	}
	return req
}
