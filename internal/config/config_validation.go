package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Seed.Username == "" || cfg.Seed.Email == "" || cfg.Seed.Password == "" {
		return ErrInvalidSeedConfigs
	}

	return nil
}
