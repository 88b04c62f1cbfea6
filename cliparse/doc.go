// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (via godotenv), so
local development can keep DATABASE_URL out of the shell environment.

# Config Fields

  - Port: Server listen port (default: 9090)
  - DatabaseURL: PostgreSQL connection string (required)

# CLI Flags

	-p  Server port
	-d  Database URL

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(conn, cfg)
*/
package cliparse
