package note

import (
	"context"
	"fmt"
	"github.com/jotter/notes-api/sys"
)

// Delete removes the note and its share rows when owned by userId.
// Returns false when nothing was deleted.
func Delete(ctx context.Context, id, userId uint64) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin delete tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ? AND userId = ?", id, userId)
	if err != nil {
		return false, fmt.Errorf("failed to exec delete stmt: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(dbCtx, "DELETE FROM noteShares WHERE noteId = ?", id); err != nil {
		return false, fmt.Errorf("failed to exec delete shares stmt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit delete tx: %w", err)
	}

	invalidate(ctx, id)

	return true, nil
}
