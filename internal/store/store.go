// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists people and article body text in SQLite. It
// implements names.PersonStore and article.ContentStore.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/sourcenet/internal/names"
	"github.com/pdiddy/sourcenet/pkg/types"
)

const (
	dbFile     = "sourcenet.db"
	driverName = "sqlite3_sourcenet"
)

// ErrNotFound is returned when a person or article does not exist.
var ErrNotFound = errors.New("not found")

func init() {
	// fold() gives SQL lookups the same Unicode case folding as
	// names.Matches; SQLite's LOWER only folds ASCII.
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", names.Fold, true)
		},
	})
}

// personColumns maps searchable fields to their columns.
var personColumns = map[types.NameField]string{
	types.FieldPrefix:   "name_prefix",
	types.FieldFirst:    "first_name",
	types.FieldMiddle:   "middle_name",
	types.FieldLast:     "last_name",
	types.FieldSuffix:   "name_suffix",
	types.FieldNickname: "nickname",
	types.FieldFullName: "full_name_string",
}

const selectPeople = `SELECT id, name_prefix, first_name, middle_name, last_name, name_suffix,
	nickname, full_name_string, original_name, gender, title, is_ambiguous, notes
	FROM people`

// Store manages the sourcenet SQLite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens or creates the database at cfg.DataDir/sourcenet.db and
// creates the schema if it does not exist. A nil logger disables logging.
func Open(cfg types.StoreConfig, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open(driverName, dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, log: log.Named("store")}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	s.log.Debug("opened database", zap.String("path", dbPath))
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			id TEXT PRIMARY KEY,
			name_prefix TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			middle_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			name_suffix TEXT NOT NULL DEFAULT '',
			nickname TEXT NOT NULL DEFAULT '',
			full_name_string TEXT NOT NULL DEFAULT '',
			original_name TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT 'na',
			title TEXT NOT NULL DEFAULT '',
			is_ambiguous INTEGER NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_people_last_name ON people(last_name)`,
		`CREATE INDEX IF NOT EXISTS idx_people_first_name ON people(first_name)`,
		`CREATE TABLE IF NOT EXISTS article_content (
			article_id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// AddPerson stores p and returns the stored record. An id is assigned when
// p has none and the full name string is derived from the parts when
// empty. A record with an existing id is replaced.
func (s *Store) AddPerson(ctx context.Context, p types.PersonRecord) (types.PersonRecord, error) {
	p = prepare(p)
	if err := upsertPerson(ctx, s.db, p); err != nil {
		return types.PersonRecord{}, err
	}
	s.log.Debug("stored person", zap.String("id", p.ID), zap.String("name", p.FullName))
	return p, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertPerson(ctx context.Context, db execer, p types.PersonRecord) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO people (id, name_prefix, first_name, middle_name, last_name, name_suffix,
			nickname, full_name_string, original_name, gender, title, is_ambiguous, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name_prefix=excluded.name_prefix, first_name=excluded.first_name,
			middle_name=excluded.middle_name, last_name=excluded.last_name,
			name_suffix=excluded.name_suffix, nickname=excluded.nickname,
			full_name_string=excluded.full_name_string, original_name=excluded.original_name,
			gender=excluded.gender, title=excluded.title,
			is_ambiguous=excluded.is_ambiguous, notes=excluded.notes`,
		p.ID, p.Prefix, p.First, p.Middle, p.Last, p.Suffix,
		p.Nickname, p.FullName, p.OriginalName, string(p.Gender), p.Title, p.IsAmbiguous, p.Notes,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storing person %s: %w", p.ID, err)
	}
	return nil
}

func prepare(p types.PersonRecord) types.PersonRecord {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.FullName == "" {
		p.FullName = p.ParsedName.FullName()
	}
	if p.Gender == "" {
		p.Gender = types.GenderUnknown
	}
	return p
}

// GetPerson returns the person with id.
func (s *Store) GetPerson(ctx context.Context, id string) (types.PersonRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectPeople+` WHERE id = ?`, id)
	if err != nil {
		return types.PersonRecord{}, fmt.Errorf("querying person %s: %w", id, err)
	}
	people, err := scanPeople(rows)
	if err != nil {
		return types.PersonRecord{}, err
	}
	if len(people) == 0 {
		return types.PersonRecord{}, fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	return people[0], nil
}

// ListPeople returns every person in insertion order.
func (s *Store) ListPeople(ctx context.Context) ([]types.PersonRecord, error) {
	return s.FindPeople(ctx, names.PersonQuery{})
}

// FindPeople returns the people matching q in insertion order, with the
// same semantics as names.Matches.
func (s *Store) FindPeople(ctx context.Context, q names.PersonQuery) ([]types.PersonRecord, error) {
	where, args, err := buildWhere(q)
	if err != nil {
		return nil, err
	}
	query := selectPeople
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	return scanPeople(rows)
}

func buildWhere(q names.PersonQuery) (string, []any, error) {
	var clauses []string
	var args []any
	for _, f := range q.All {
		c, a, err := filterClause(f)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, c)
		args = append(args, a...)
	}
	if len(q.Any) > 0 {
		var alts []string
		for _, f := range q.Any {
			c, a, err := filterClause(f)
			if err != nil {
				return "", nil, err
			}
			alts = append(alts, c)
			args = append(args, a...)
		}
		clauses = append(clauses, "("+strings.Join(alts, " OR ")+")")
	}
	return strings.Join(clauses, " AND "), args, nil
}

func filterClause(f names.FieldFilter) (string, []any, error) {
	col, ok := personColumns[f.Field]
	if !ok {
		return "", nil, fmt.Errorf("unknown person field %q", f.Field)
	}
	value := strings.TrimSpace(f.Value)
	switch f.Mode {
	case names.ModeEmpty:
		return "trim(" + col + ") = ''", nil, nil
	case names.ModeExact:
		return "fold(trim(" + col + ")) = fold(?)", []any{value}, nil
	case names.ModeContains:
		return "instr(fold(trim(" + col + ")), fold(?)) > 0", []any{value}, nil
	}
	return "", nil, fmt.Errorf("unknown filter mode %q", f.Mode)
}

func scanPeople(rows *sql.Rows) ([]types.PersonRecord, error) {
	defer rows.Close()
	var out []types.PersonRecord
	for rows.Next() {
		var p types.PersonRecord
		var gender string
		if err := rows.Scan(
			&p.ID, &p.Prefix, &p.First, &p.Middle, &p.Last, &p.Suffix,
			&p.Nickname, &p.FullName, &p.OriginalName, &gender, &p.Title, &p.IsAmbiguous, &p.Notes,
		); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		p.Gender = types.Gender(gender)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}
	return out, nil
}

// GetContent returns the stored body text of articleID.
func (s *Store) GetContent(ctx context.Context, articleID string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM article_content WHERE article_id = ?`, articleID,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("article %s: %w", articleID, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("reading article %s: %w", articleID, err)
	}
	return content, nil
}

// SetContent replaces the body text of articleID and returns it.
func (s *Store) SetContent(ctx context.Context, articleID, content string) (string, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO article_content (article_id, content, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(article_id) DO UPDATE SET content=excluded.content, updated_at=excluded.updated_at`,
		articleID, content, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("writing article %s: %w", articleID, err)
	}
	s.log.Debug("stored article content", zap.String("article", articleID), zap.Int("bytes", len(content)))
	return content, nil
}
