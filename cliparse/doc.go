// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first when present.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string or SQLite path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - JWTSecret: Secret for signing identity tokens (required)
  - TokenTTL: Token lifetime (default: 168h)
  - QueryTimeout: Per-operation database timeout (default: 5s)

# CLI Flags

	-p              Port
	-d              Database URL
	-t              Database type
	-jwt-secret     JWT secret
	-token-ttl      Token lifetime
	-query-timeout  Database timeout

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, JWT_SECRET, TOKEN_TTL, QUERY_TIMEOUT

CLI flags take precedence over environment variables.
*/
package cliparse
