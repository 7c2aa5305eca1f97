package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jotter/notes-api/sys"
)

// FindByUsername returns the zero User when the username is unknown
func FindByUsername(ctx context.Context, username string) (User, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, username, email, passwordHash, createdAt FROM users WHERE username = ?")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	row := stmt.QueryRowContext(dbCtx, username)

	var u User
	var email sql.NullString
	if err := row.Scan(&u.Id, &u.Username, &email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, nil
		}
		return User{}, fmt.Errorf("error parsing db data: %w", err)
	}
	u.Email = email.String
	return u, nil
}

// Find returns the zero User when the id is unknown
func Find(ctx context.Context, id uint64) (User, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, username, email, passwordHash, createdAt FROM users WHERE id = ?")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	row := stmt.QueryRowContext(dbCtx, id)

	var u User
	var email sql.NullString
	if err := row.Scan(&u.Id, &u.Username, &email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, nil
		}
		return User{}, fmt.Errorf("error parsing db data: %w", err)
	}
	u.Email = email.String
	return u, nil
}

// MissingIds returns the subset of ids that do not belong to any user
func MissingIds(ctx context.Context, ids []uint64) ([]uint64, error) {
	var missing []uint64
	for _, id := range ids {
		u, err := Find(ctx, id)
		if err != nil {
			return nil, err
		}
		if u.Id == 0 {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
