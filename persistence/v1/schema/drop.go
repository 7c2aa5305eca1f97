package schema

import (
	"context"
	"errors"
	"github.com/jotter/notes-api/sys"
)

func Drop(ctx context.Context) error {
	db := sys.R.Database

	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("drop schema: " + err.Error())
		}
	}

	return nil
}
