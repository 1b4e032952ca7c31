// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays environment variables onto cfg following the env and
// envPrefix tags, e.g. WORKERS_MAX_RETRIES lands in Workers.MaxRetries.
// Unset variables leave their fields untouched.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}
