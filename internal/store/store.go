// Package store persists analysis run history in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

//go:embed schema.sql
var schemaSQL string

type Store struct {
	db *sql.DB
}

// Run is one recorded analyzer invocation.
type Run struct {
	ID        string
	Root      string
	Model     string
	CreatedAt time.Time
	Files     int
	Elements  int
}

// RunResult is the stored form of one analyzed file. Element rows keep
// the structural summary (kind, name, line span), never source text.
type RunResult struct {
	Path     string
	Category model.Category
	SubType  string
	Analysis string
	Err      string
	Elements []model.Element
}

func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("dbPath is required")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	_, _ = s.db.Exec("PRAGMA journal_mode = WAL")
	_, _ = s.db.Exec("PRAGMA synchronous = NORMAL")

	return execStatements(s.db, schemaSQL)
}

// SaveRun records one invocation and returns its id.
func (s *Store) SaveRun(root string, modelName string, results []RunResult) (string, error) {
	if s == nil || s.db == nil {
		return "", fmt.Errorf("store is not open")
	}

	elements := 0
	for _, r := range results {
		elements += len(r.Elements)
	}
	runID := uuid.NewString()

	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return "", err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		_, _ = conn.ExecContext(ctx, "ROLLBACK")
	}()

	if _, err := conn.ExecContext(ctx,
		`INSERT INTO runs (id, root, model, created_at, files, elements)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, filepath.ToSlash(root), modelName, time.Now().Unix(), len(results), elements,
	); err != nil {
		return "", err
	}

	resStmt, err := conn.PrepareContext(ctx,
		`INSERT INTO results (run_id, path, category, sub_type, analysis, error)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer resStmt.Close()

	elStmt, err := conn.PrepareContext(ctx,
		`INSERT INTO elements (result_id, kind, name, start_line, end_line)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer elStmt.Close()

	for _, r := range results {
		res, err := resStmt.ExecContext(ctx,
			runID, filepath.ToSlash(r.Path), string(r.Category), r.SubType, r.Analysis, r.Err)
		if err != nil {
			return "", err
		}
		resultID, err := res.LastInsertId()
		if err != nil {
			return "", err
		}
		for _, el := range r.Elements {
			if _, err := elStmt.ExecContext(ctx,
				resultID, string(el.Kind), el.Name, el.StartLine, el.EndLine); err != nil {
				return "", err
			}
		}
	}

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return "", err
	}
	committed = true
	return runID, nil
}

// Runs returns recorded runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store is not open")
	}

	q := `SELECT id, root, model, created_at, files, elements
	      FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.ID, &r.Root, &r.Model, &created, &r.Files, &r.Elements); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(created, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun looks up a single run by id.
func (s *Store) GetRun(id string) (Run, error) {
	if s == nil || s.db == nil {
		return Run{}, fmt.Errorf("store is not open")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Run{}, fmt.Errorf("run id is required")
	}

	var r Run
	var created int64
	err := s.db.QueryRow(
		`SELECT id, root, model, created_at, files, elements FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Root, &r.Model, &created, &r.Files, &r.Elements)
	if err != nil {
		return Run{}, err
	}
	r.CreatedAt = time.Unix(created, 0)
	return r, nil
}

// RunResults returns the per-file results of a run in insertion order,
// each with its element summaries.
func (s *Store) RunResults(runID string) ([]RunResult, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("store is not open")
	}
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, fmt.Errorf("run id is required")
	}

	rows, err := s.db.Query(
		`SELECT id, path, category, sub_type, analysis, error
		 FROM results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunResult
	index := map[int64]int{}
	for rows.Next() {
		var id int64
		var r RunResult
		var category string
		if err := rows.Scan(&id, &r.Path, &category, &r.SubType, &r.Analysis, &r.Err); err != nil {
			return nil, err
		}
		r.Category = model.Category(category)
		index[id] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	elRows, err := s.db.Query(
		`SELECT e.result_id, e.kind, e.name, e.start_line, e.end_line
		 FROM elements e
		 JOIN results r ON r.id = e.result_id
		 WHERE r.run_id = ?
		 ORDER BY e.result_id, e.id`, runID)
	if err != nil {
		return nil, err
	}
	defer elRows.Close()

	for elRows.Next() {
		var resultID int64
		var kind string
		var el model.Element
		if err := elRows.Scan(&resultID, &kind, &el.Name, &el.StartLine, &el.EndLine); err != nil {
			return nil, err
		}
		el.Kind = model.Kind(kind)
		if i, ok := index[resultID]; ok {
			out[i].Elements = append(out[i].Elements, el)
		}
	}
	return out, elRows.Err()
}

func execStatements(db *sql.DB, sqlText string) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	sqlText = strings.ReplaceAll(sqlText, "\r\n", "\n")

	var cleaned strings.Builder
	for _, line := range strings.Split(sqlText, "\n") {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "--") {
			continue
		}
		cleaned.WriteString(line)
		cleaned.WriteString("\n")
	}

	for _, raw := range strings.Split(cleaned.String(), ";") {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt, err)
		}
	}
	return nil
}
