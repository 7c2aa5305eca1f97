package note

import (
	"context"
	"fmt"
	"github.com/jotter/notes-api/sys"
)

// ListByUser returns every note owned by the user, oldest first
func ListByUser(ctx context.Context, userId uint64) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, userId, title, content, updatedAt, createdAt FROM notes WHERE userId = ? ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare list stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query list stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.Id, &n.UserId, &n.Title, &n.Content, &n.UpdatedAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}
