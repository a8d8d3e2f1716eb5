// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The DSN is not required here: the backup CLI shares this config and never
// talks to the database. The server checks it when connecting.
func (cfg *StructuredConfig) validate() error {
	if cfg.Limits.MaxUsers < 0 || cfg.Limits.MaxDirectoriesPerUser < 0 || cfg.Limits.MaxStatesPerDirectory < 0 {
		return ErrInvalidLimitsConfigs
	}

	if cfg.Storage.DB.Schema != "" && strings.ContainsAny(cfg.Storage.DB.Schema, `"; `) {
		return fmt.Errorf("%w: schema %q contains forbidden characters", ErrInvalidStorageConfigs, cfg.Storage.DB.Schema)
	}

	if prefix := cfg.Server.APIPrefix; prefix != "" {
		if !strings.HasPrefix(prefix, "/") || strings.HasSuffix(prefix, "/") {
			return fmt.Errorf("%w: api prefix %q must start and must not end with '/'", ErrInvalidServerConfigs, prefix)
		}
	}

	return nil
}
