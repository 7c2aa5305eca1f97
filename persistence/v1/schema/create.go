package schema

import (
	"context"
	"errors"
	"github.com/jotter/notes-api/sys"
)

func Create(ctx context.Context) error {
	db := sys.R.Database

	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}

// CreateIndexes applies the mysql-only indexes. Run by the ops cli after Create.
func CreateIndexes(ctx context.Context) error {
	db := sys.R.Database

	for _, stmt := range indexStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create indexes: " + err.Error())
		}
	}

	return nil
}
