package note

import (
	"context"
	"fmt"
	"github.com/jotter/notes-api/sys"
	"time"
)

func Insert(ctx context.Context, newN NewNote) (Note, error) {
	db := sys.R.Database

	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (userId, title, content, updatedAt, createdAt) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	result, err := stmt.ExecContext(dbCtx, newN.UserId, newN.Title, newN.Content, n, n)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	return Note{
		Id:        uint64(id),
		UserId:    newN.UserId,
		Title:     newN.Title,
		Content:   newN.Content,
		UpdatedAt: n,
		CreatedAt: n,
	}, nil
}
