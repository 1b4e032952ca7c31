package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the sheet API's status codes onto adapter sentinels.
// Throttling and gateway failures count as the remote being unavailable.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrRowNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrRemoteUnavailable,
	http.StatusBadGateway:          ErrRemoteUnavailable,
	http.StatusServiceUnavailable:  ErrRemoteUnavailable,
	http.StatusGatewayTimeout:      ErrRemoteUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	code := resp.StatusCode()
	detail := strings.TrimSpace(resp.String())
	if detail == "" {
		detail = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrRemoteUnavailable, code, detail)
	}
	return fmt.Errorf("remote http %d: %s", code, detail)
}
