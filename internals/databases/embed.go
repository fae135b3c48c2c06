package database

import "embed"

// Migrations holds the SQL files applied by cmd/migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
