// Package database opens the SQLite store that persists reservations.
//
// The driver is modernc.org/sqlite (pure Go, no CGO).  WAL mode keeps the
// admin read endpoints from blocking public submission writes.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	// Register the pure-Go SQLite driver under the name "sqlite".
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.  Idempotent due to IF NOT
// EXISTS; the table is created automatically the first time the process
// runs against a fresh database file.  Dates and timestamps are stored as
// TEXT (SQLite idiom): check_in/check_out are date or date-time strings as
// submitted, created_at is ISO-8601 UTC.
const schema = `
CREATE TABLE IF NOT EXISTS reservations (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    guest_name       TEXT    NOT NULL,
    guest_email      TEXT    NOT NULL,
    guest_phone      TEXT,
    check_in         TEXT    NOT NULL,
    check_out        TEXT    NOT NULL,
    check_in_time    TEXT,
    check_out_time   TEXT,
    room_type        TEXT    NOT NULL,
    room_count       INTEGER NOT NULL,
    adults           INTEGER NOT NULL,
    children         INTEGER NOT NULL,
    total_price      REAL    NOT NULL,
    payment_status   TEXT    NOT NULL,
    special_requests TEXT,
    experiences      TEXT,
    created_at       TEXT    NOT NULL
)`

func init() {
	// sqlx does not know the modernc driver name out of the box; it uses
	// plain ? placeholders like mysql/sqlite3.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens (or creates) the SQLite database at the given path, verifies
// the connection and applies the schema.
func Open(path string) (*sqlx.DB, error) {
	// WAL enables concurrent readers.  busy_timeout waits for locks instead
	// of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection; this also
	// serializes racing admin edits so a row is always one caller's write.
	db.SetMaxOpenConns(1)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return db, nil
}
