package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
)

// NewRemoteStore builds the [RemoteStore] selected by cfg.Backend.
func NewRemoteStore(cfg config.Remote, log *logger.Logger) (RemoteStore, error) {
	switch cfg.Backend {
	case config.RemoteBackendWorkbook:
		return NewWorkbookRemoteStore(cfg.WorkbookPath, log)
	case config.RemoteBackendHTTP, "":
		return NewHTTPRemoteStore(cfg, log)
	default:
		return nil, fmt.Errorf("unknown remote backend %q", cfg.Backend)
	}
}
