// Package schemas embeds the SQL migration files applied by database.Migrate.
package schemas

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
