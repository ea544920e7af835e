package members

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Store is the member register, kept in an SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (and if necessary creates) the register database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("register %s: %w", path, err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("register %s: %w", path, err)
	}
	tracer().Debugf("member register opened at %s", path)
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS members (\n\tid TEXT PRIMARY KEY,\n\tcreated_at TEXT NOT NULL")
	for _, col := range columns[2:] {
		if strings.HasPrefix(col, "consent_") {
			fmt.Fprintf(&b, ",\n\t%s INTEGER NOT NULL DEFAULT 0", col)
		} else {
			fmt.Fprintf(&b, ",\n\t%s TEXT NOT NULL DEFAULT ''", col)
		}
	}
	b.WriteString("\n);\nCREATE INDEX IF NOT EXISTS idx_members_created ON members(created_at);")
	_, err := db.ExecContext(ctx, b.String())
	return err
}

// Add validates m and stores it as a new member. ID and CreatedAt are
// assigned if empty. The stored member is returned.
func (s *Store) Add(ctx context.Context, m Member) (Member, error) {
	if err := Validate(m); err != nil {
		return m, err
	}
	if m.ID == "" {
		m.ID = ulid.Make().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}
	m.CreatedAt = m.CreatedAt.UTC().Truncate(time.Microsecond)
	rec := m.record()
	args := make([]any, len(rec))
	for i, v := range rec {
		args[i] = v
	}
	query := "INSERT INTO members (" + strings.Join(columns[:], ",") + ") VALUES (" +
		strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return m, fmt.Errorf("store member: %w", err)
	}
	tracer().Infof("member %s registered", m.ID)
	return m, nil
}

// List returns all members, most recent registration first.
func (s *Store) List(ctx context.Context) ([]Member, error) {
	query := "SELECT " + strings.Join(columns[:], ",") + " FROM members ORDER BY created_at DESC, id DESC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Member
	rec := make([]string, len(columns))
	dest := make([]any, len(columns))
	for i := range rec {
		dest[i] = &rec[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		m, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Names returns the display name of every member, in order of registration.
// Members without any name part are skipped; duplicates are kept.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT nev_elotag, nev_vezetek, nev_kereszt, nev_utonev
		FROM members ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.Prefix, &m.Surname, &m.GivenName, &m.MiddleName); err != nil {
			return nil, err
		}
		if name := m.Name(); name != "" {
			names = append(names, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	tracer().Debugf("%d names in member register", len(names))
	return names, nil
}
