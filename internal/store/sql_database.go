package store

import (
	"github.com/datasciencemap/community-map/migrations"
)

// Migrate applies all embedded goose migrations against the wrapped
// connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
