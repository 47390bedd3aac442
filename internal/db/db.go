package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath names a private in-memory catalog.
const MemoryPath = ":memory:"

// connPragmas run on every pooled connection the driver opens. A PRAGMA
// issued through db.Exec would only reach one of them.
var connPragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// OpenDB opens the SQLite catalog database at path and runs migrations.
// MemoryPath is pinned to one connection, since each new connection to it
// would see an empty database.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == MemoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path, memory))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// dsn appends the per-connection pragmas in the driver's _pragma form.
// WAL only applies to files.
func dsn(path string, memory bool) string {
	pragmas := connPragmas
	if !memory {
		pragmas = append(slices.Clone(pragmas), "journal_mode(WAL)")
	}
	params := make([]string, len(pragmas))
	for i, p := range pragmas {
		params[i] = "_pragma=" + p
	}
	return path + "?" + strings.Join(params, "&")
}
