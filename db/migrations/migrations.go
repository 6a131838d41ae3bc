package migrations

import "embed"

// Postgres and SQLite embed the SQL migrations of each dialect. The
// golang-migrate library reads them through the iofs driver.
var (
	//go:embed postgres/*.sql
	Postgres embed.FS

	//go:embed sqlite/*.sql
	SQLite embed.FS
)

// Version is the schema version both dialects migrate to.
const Version = 2
