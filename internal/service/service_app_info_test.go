package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_Version(t *testing.T) {
	tests := []struct {
		name    string
		version string
		build   models.AppBuildInfo
		want    models.VersionResponse
	}{
		{
			name:    "configured version wins over linker version",
			version: "3.1.4",
			build:   models.NewAppBuildInfo("v3.1.4-rc", "2026-10-01", "abc123"),
			want:    models.VersionResponse{Version: "3.1.4", BuildDate: "2026-10-01", BuildCommit: "abc123"},
		},
		{
			name:    "local build without ldflags",
			version: "dev",
			build:   models.NewAppBuildInfo("", "", ""),
			want:    models.VersionResponse{Version: "dev", BuildDate: "N/A", BuildCommit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, tt.build, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.Version(context.Background()))
		})
	}
}
