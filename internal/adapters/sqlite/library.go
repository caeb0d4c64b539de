package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"audioshelf/internal/domain"
	"audioshelf/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

const currentBookKey = "current_book_id"

// Library implements ports.BookRepository and ports.SelectionStore using SQLite
type Library struct {
	db     *sql.DB
	dbPath string
}

var (
	_ ports.BookRepository = (*Library)(nil)
	_ ports.SelectionStore = (*Library)(nil)
)

// NewLibrary creates a new SQLite library
func NewLibrary() *Library {
	return &Library{}
}

// Open opens (and creates if needed) the database at dbPath
func (l *Library) Open(dbPath string) error {
	l.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	l.db = db

	// Performance pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS books (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			duration INTEGER NOT NULL,
			cover_key TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_books_name ON books(name COLLATE NOCASE);
		CREATE INDEX IF NOT EXISTS idx_books_cover ON books(cover_key);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO prefs (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (l *Library) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// ListBooks returns all books in shelf order
func (l *Library) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, name, author, position, duration, cover_key
		FROM books
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Author, &b.Position, &b.Duration, &b.CoverKey); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	domain.SortBooks(books)
	return books, nil
}

// GetBook retrieves a book by ID, returning nil when it does not exist
func (l *Library) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	var b domain.Book
	err := l.db.QueryRowContext(ctx, `
		SELECT id, name, author, position, duration, cover_key
		FROM books WHERE id = ?
	`, id).Scan(&b.ID, &b.Name, &b.Author, &b.Position, &b.Duration, &b.CoverKey)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByCoverKey returns the books using a cover key
func (l *Library) FindByCoverKey(ctx context.Context, key string) ([]int64, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT id FROM books WHERE cover_key = ?`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddBook inserts a book and returns it with its new ID
func (l *Library) AddBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO books (name, author, position, duration, cover_key)
		VALUES (?, ?, ?, ?, ?)
	`, book.Name, book.Author, book.Position, book.Duration, book.CoverKey)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	book.ID = id
	return &book, nil
}

// UpdatePosition stores a new playback position
func (l *Library) UpdatePosition(ctx context.Context, id int64, position int64) error {
	res, err := l.db.ExecContext(ctx, `UPDATE books SET position = ? WHERE id = ?`, position, id)
	if err != nil {
		return err
	}
	return expectOneRow(res, id)
}

// RemoveBook deletes a book and clears the selection if it pointed at it
func (l *Library) RemoveBook(ctx context.Context, id int64) error {
	return l.withTx(ctx, func(tx *libraryTx) error {
		if err := tx.deleteBook(id); err != nil {
			return err
		}
		return tx.clearSelectionIf(id)
	})
}

// CurrentBookID returns the selected book ID, if any
func (l *Library) CurrentBookID(ctx context.Context) (int64, bool, error) {
	var value string
	err := l.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, currentBookKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt %s preference %q: %w", currentBookKey, value, err)
	}
	return id, true, nil
}

// SetCurrentBookID stores the selected book ID
func (l *Library) SetCurrentBookID(ctx context.Context, id int64) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)
	`, currentBookKey, strconv.FormatInt(id, 10))
	return err
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("book %d does not exist", id)
	}
	return nil
}
