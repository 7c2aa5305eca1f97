package user

import (
	"context"
	"fmt"
	"github.com/jotter/notes-api/sys"
	"time"
)

func Insert(ctx context.Context, newU NewUser) (uint64, error) {
	db := sys.R.Database

	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO users (username, email, passwordHash, createdAt) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	result, err := stmt.ExecContext(dbCtx, newU.Username, newU.Email, newU.PasswordHash, n)
	if err != nil {
		return 0, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return uint64(id), nil
}
