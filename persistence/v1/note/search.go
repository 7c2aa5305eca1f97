package note

import (
	"context"
	"fmt"
	"github.com/jotter/notes-api/sys"
)

// Search runs a full-text match of q against note titles and contents.
// Matching and ranking come from the mysql FULLTEXT index; rows come back in
// decreasing relevance order. The search is system-wide, not scoped to any
// user.
func Search(ctx context.Context, q string) ([]Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, userId, title, content, updatedAt, createdAt FROM notes WHERE MATCH (title, content) AGAINST (? IN NATURAL LANGUAGE MODE)")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare search stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query search stmt: %w", err)
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
