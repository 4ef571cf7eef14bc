package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    data       TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
)`

// SQLiteStore keeps one row per project, with the project JSON in a text
// column.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies the schema.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storageErr(err, "create db dir")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storageErr(err, "open %s", path)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, storageErr(err, "apply schema")
	}
	return &SQLiteStore{db: db}, nil
}

// sqliteTime is fixed width so timestamps sort lexically.
const sqliteTime = "2006-01-02T15:04:05.000000000Z"

func stamp(t time.Time) string { return t.UTC().Format(sqliteTime) }

func (s *SQLiteStore) List(ctx context.Context) ([]*drawing.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM projects ORDER BY created_at, rowid`)
	if err != nil {
		return nil, storageErr(err, "list projects")
	}
	defer rows.Close()

	out := []*drawing.Project{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, storageErr(err, "list projects")
		}
		p, err := decode([]byte(data))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "list projects")
	}
	return out, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*drawing.Project, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM projects WHERE id = ?`, id).Scan(&data)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, storageErr(err, "get project %s", id)
	}
	return decode([]byte(data))
}

func (s *SQLiteStore) Create(ctx context.Context, p *drawing.Project) error {
	data, err := encode(p)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO projects (id, name, data, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (id) DO NOTHING
    `, p.ID, p.Name, string(data), stamp(p.CreatedAt), stamp(p.UpdatedAt))
	if err != nil {
		return storageErr(err, "create project %s", p.ID)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return exists(p.ID)
	}
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, p *drawing.Project) error {
	data, err := encode(p)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
        UPDATE projects SET name = ?, data = ?, updated_at = ?
        WHERE id = ?
    `, p.Name, string(data), stamp(p.UpdatedAt), p.ID)
	if err != nil {
		return storageErr(err, "update project %s", p.ID)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(p.ID)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return storageErr(err, "delete project %s", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(id)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
