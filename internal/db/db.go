// Package db embeds the goose migrations for the Postgres schema.
package db

import "embed"

// Migrations holds the SQL files under migrations/. Pass it to pg.Migrate
// with MigrationsPath set to "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
