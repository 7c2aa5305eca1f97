package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jotter/notes-api/sys"
	"strings"
	"time"
)

// Update merges the given fields into the note and refreshes updatedAt.
// A nil field keeps the stored value. The merge is a single UPDATE naming
// only the provided columns, so concurrent partial updates serialize on the
// row lock without reverting each other's fields. The read-back runs in the
// same transaction. Returns the zero Note when the note does not exist or is
// not owned by userId.
func Update(ctx context.Context, id, userId uint64, title, content *string) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return Note{}, fmt.Errorf("failed to begin update tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)
	if title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *title)
	}
	if content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *content)
	}
	sets = append(sets, "updatedAt = ?")
	args = append(args, time.Now().UTC(), id, userId)

	if _, err := tx.ExecContext(dbCtx, "UPDATE notes SET "+strings.Join(sets, ", ")+" WHERE id = ? AND userId = ?", args...); err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	row := tx.QueryRowContext(dbCtx, "SELECT id, userId, title, content, updatedAt, createdAt FROM notes WHERE id = ? AND userId = ?", id, userId)

	var updated Note
	if err := row.Scan(&updated.Id, &updated.UserId, &updated.Title, &updated.Content, &updated.UpdatedAt, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, nil
		}
		return Note{}, fmt.Errorf("error parsing db data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Note{}, fmt.Errorf("failed to commit update tx: %w", err)
	}

	invalidate(ctx, id)

	return updated, nil
}
