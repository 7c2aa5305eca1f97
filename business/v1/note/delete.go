package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
)

// Delete permanently removes a note owned by userId. Deleting the same id
// twice yields ErrNotFound on the second call.
func Delete(ctx context.Context, userId, id uint64) error {
	deleted, err := note.Delete(ctx, id, userId)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
