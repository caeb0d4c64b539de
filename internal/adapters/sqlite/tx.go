package sqlite

import (
	"context"
	"database/sql"
	"strconv"
)

// libraryTx groups the statements of one atomic library update
type libraryTx struct {
	tx *sql.Tx
}

// withTx runs fn in a transaction, committing only when it succeeds
func (l *Library) withTx(ctx context.Context, fn func(tx *libraryTx) error) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&libraryTx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// deleteBook removes a book by ID
func (t *libraryTx) deleteBook(id int64) error {
	res, err := t.tx.Exec(`DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res, id)
}

// clearSelectionIf drops the current book preference when it points at id
func (t *libraryTx) clearSelectionIf(id int64) error {
	_, err := t.tx.Exec(`
		DELETE FROM prefs WHERE key = ? AND value = ?
	`, currentBookKey, strconv.FormatInt(id, 10))
	return err
}
