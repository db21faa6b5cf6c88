// Package storage provides SQLite-based persistence for named word lists.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrListNotFound is returned when a named word list does not exist.
var ErrListNotFound = errors.New("storage: word list not found")

// Store manages the SQLite database connection for word list persistence.
type Store struct {
	db *sql.DB
}

// WordList describes one stored list.
type WordList struct {
	ID        int64
	Name      string
	Count     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies all pending schema migrations.
func (s *Store) migrate(ctx context.Context) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportWords stores words under the given list name, replacing any
// previous contents of that list. Blank entries are skipped.
// Returns the number of words stored.
func (s *Store) ImportWords(name string, list []string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("storage: list name must not be empty")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR IGNORE INTO word_lists (name) VALUES (?)", name); err != nil {
		return 0, fmt.Errorf("storage: cannot create list: %w", err)
	}

	var listID int64
	if err := tx.QueryRow("SELECT id FROM word_lists WHERE name = ?", name).Scan(&listID); err != nil {
		return 0, fmt.Errorf("storage: cannot resolve list: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM words WHERE list_id = ?", listID); err != nil {
		return 0, fmt.Errorf("storage: cannot clear list: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (list_id, word) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, w := range list {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, err := stmt.Exec(listID, w); err != nil {
			return 0, fmt.Errorf("storage: cannot save word: %w", err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return count, nil
}

// Words returns the words of a list in import order.
func (s *Store) Words(name string) ([]string, error) {
	var listID int64
	err := s.db.QueryRow("SELECT id FROM word_lists WHERE name = ?", name).Scan(&listID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrListNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query list: %w", err)
	}

	rows, err := s.db.Query("SELECT word FROM words WHERE list_id = ? ORDER BY id", listID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		list = append(list, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return list, nil
}

// Lists returns all stored lists ordered by name.
func (s *Store) Lists() ([]WordList, error) {
	rows, err := s.db.Query(
		`SELECT l.id, l.name, COUNT(w.id), l.created_at
		 FROM word_lists l
		 LEFT JOIN words w ON w.list_id = l.id
		 GROUP BY l.id
		 ORDER BY l.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lists: %w", err)
	}
	defer rows.Close()

	var lists []WordList
	for rows.Next() {
		var l WordList
		var createdAt any
		if err := rows.Scan(&l.ID, &l.Name, &l.Count, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			l.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				l.CreatedAt = parsed
			}
		}
		lists = append(lists, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return lists, nil
}

// RemoveList deletes a list and its words.
func (s *Store) RemoveList(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var listID int64
	err = tx.QueryRow("SELECT id FROM word_lists WHERE name = ?", name).Scan(&listID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrListNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query list: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM words WHERE list_id = ?", listID); err != nil {
		return fmt.Errorf("storage: cannot delete words: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM word_lists WHERE id = ?", listID); err != nil {
		return fmt.Errorf("storage: cannot delete list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}
