package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN
//	-connect-timeout database connection timeout (e.g., "10s", "1m")
//	-c/-config json file path with configs
//	-seed-username seed account username
//	-seed-email seed account email
//	-seed-password seed account password
//	-seed-full-name seed account full name
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var connectTimeout time.Duration
	var jsonConfigPath string
	var seedUsername string
	var seedEmail string
	var seedPassword string
	var seedFullName string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.DurationVar(&connectTimeout, "connect-timeout", 0, "Database connection timeout (e.g., 10s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&seedUsername, "seed-username", "", "Seed account username")
	flag.StringVar(&seedEmail, "seed-email", "", "Seed account email")
	flag.StringVar(&seedPassword, "seed-password", "", "Seed account password")
	flag.StringVar(&seedFullName, "seed-full-name", "", "Seed account full name")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				ConnectTimeout: connectTimeout,
			},
		},
		Seed: Seed{
			Username: seedUsername,
			Email:    seedEmail,
			Password: seedPassword,
			FullName: seedFullName,
		},
		JSONFilePath: jsonConfigPath,
	}
}
