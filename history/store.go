package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "lending_events"

// Store is an append-only SQLite ledger of lending events.
type Store struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper

	appendStmt *sqlx.Stmt
}

// Open opens (or creates) the ledger database at dbPath, applies schema
// migrations, and prepares the append statement.
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create ledger dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	store := &Store{db: db, dialect: goqu.Dialect("sqlite3")}
	store.appendStmt, err = db.Preparex(`INSERT INTO lending_events(id,kind,occurred_at,payload) VALUES(?,?,?,?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare append: %w", err)
	}
	return store, nil
}

// Close releases the prepared statement and closes the DB.
func (s *Store) Close() error {
	if s.appendStmt != nil {
		s.appendStmt.Close()
	}
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sqlx.DB) error {
	// WAL improves write concurrency.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// occurred_at holds unix microseconds so range filters compare
	// numerically.
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS lending_events (
            id TEXT PRIMARY KEY,
            kind TEXT NOT NULL,
            occurred_at INTEGER NOT NULL,
            payload TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_lending_events_occurred_at
            ON lending_events(occurred_at);`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Writes and reads
// ---------------------------------------------------------------------------

// Append writes one event to the ledger.
func (s *Store) Append(e Event) error {
	payload, err := e.marshalPayload()
	if err != nil {
		return err
	}
	if _, err := s.appendStmt.Exec(e.ID.String(), e.Kind, e.OccurredAt.UnixMicro(), string(payload)); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// Filter narrows a ledger query. Zero fields are ignored.
type Filter struct {
	Kind  string
	User  string
	Since time.Time
	Limit int
}

type eventRow struct {
	ID         string `db:"id"`
	Kind       string `db:"kind"`
	OccurredAt int64  `db:"occurred_at"`
	Payload    string `db:"payload"`
}

// Query returns events matching the filter, newest first.
func (s *Store) Query(f Filter) ([]Event, error) {
	q := s.dialect.From(tableName).
		Select("id", "kind", "occurred_at", "payload").
		Order(goqu.C("occurred_at").Desc(), goqu.C("rowid").Desc())

	if f.Kind != "" {
		q = q.Where(goqu.C("kind").Eq(f.Kind))
	}
	if f.User != "" {
		q = q.Where(goqu.L("json_extract(payload, '$.user')").Eq(f.User))
	}
	if !f.Since.IsZero() {
		q = q.Where(goqu.C("occurred_at").Gte(f.Since.UnixMicro()))
	}
	if f.Limit > 0 {
		q = q.Limit(uint(f.Limit))
	}

	query, _, err := q.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []eventRow
	if err := s.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// CountByKind tallies ledger entries per event kind.
func (s *Store) CountByKind() (map[string]int64, error) {
	query, _, err := s.dialect.From(tableName).
		Select(goqu.C("kind"), goqu.COUNT("*").As("n")).
		GroupBy(goqu.C("kind")).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []struct {
		Kind string `db:"kind"`
		N    int64  `db:"n"`
	}
	if err := s.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Kind] = row.N
	}
	return counts, nil
}

func (r eventRow) toEvent() (Event, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return Event{}, fmt.Errorf("parse event id %q: %w", r.ID, err)
	}
	e := Event{
		ID:         id,
		Kind:       r.Kind,
		OccurredAt: time.UnixMicro(r.OccurredAt).UTC(),
	}
	if err := marshaler.UnmarshalFromString(r.Payload, &e.Payload); err != nil {
		return Event{}, fmt.Errorf("decode payload: %w", err)
	}
	return e, nil
}
