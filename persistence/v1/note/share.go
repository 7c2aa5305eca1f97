package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jotter/notes-api/sys"
	"time"
)

// ReplaceShares swaps the note's shared-with set for userIds in one
// transaction. The previous set is discarded, not merged. The note row is
// written first, which refreshes updatedAt and holds its lock until commit,
// so a concurrent delete cannot interleave with the share rewrite. Returns
// false when the note does not exist or is not owned by userId.
func ReplaceShares(ctx context.Context, id, userId uint64, userIds []uint64) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin share tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(dbCtx, "UPDATE notes SET updatedAt = ? WHERE id = ? AND userId = ?", time.Now().UTC(), id, userId); err != nil {
		return false, fmt.Errorf("failed to exec touch stmt: %w", err)
	}

	row := tx.QueryRowContext(dbCtx, "SELECT id FROM notes WHERE id = ? AND userId = ?", id, userId)
	var ownedId uint64
	if err := row.Scan(&ownedId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error parsing db data: %w", err)
	}

	if _, err := tx.ExecContext(dbCtx, "DELETE FROM noteShares WHERE noteId = ?", id); err != nil {
		return false, fmt.Errorf("failed to exec clear shares stmt: %w", err)
	}

	for _, target := range userIds {
		if _, err := tx.ExecContext(dbCtx, "INSERT INTO noteShares (noteId, userId) VALUES (?, ?)", id, target); err != nil {
			return false, fmt.Errorf("failed to exec insert share stmt: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit share tx: %w", err)
	}

	invalidate(ctx, id)

	return true, nil
}
