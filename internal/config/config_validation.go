// SPDX-License-Identifier: Apache-2.0

package config

// applyDefaults fills in working defaults for fields no configuration source
// provided. The listen address falls back to ":3000" and the static assets
// directory to "./static".
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":3000"
	}

	if cfg.App.StaticDir == "" {
		cfg.App.StaticDir = "./static"
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
