// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envNamespace lets packaged hosts set INVENTORY_STORAGE_DB_DSN and friends
// without clashing with other tools. A namespaced variable wins over the
// plain one.
const envNamespace = "INVENTORY_"

// parseEnv reads a [StructuredConfig] from environ, given as KEY=value
// pairs the way [os.Environ] returns them.
func parseEnv(environ []string) (*StructuredConfig, error) {
	vars := env.ToMap(environ)
	namespaced := make(map[string]string)
	for key, value := range vars {
		if plain, ok := strings.CutPrefix(key, envNamespace); ok && plain != "" {
			namespaced[plain] = value
		}
	}
	maps.Copy(vars, namespaced)

	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error reading inventory settings from environment: %w", err)
	}
	return cfg, nil
}
