package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
)

// Update applies a partial update to a note owned by userId
func Update(ctx context.Context, userId, id uint64, up UpdateNote) (Note, error) {
	updated, err := note.Update(ctx, id, userId, up.Title, up.Content)
	if err != nil {
		return Note{}, err
	}
	if updated.Id == 0 {
		return Note{}, ErrNotFound
	}

	shared, err := note.Shared(ctx, id)
	if err != nil {
		return Note{}, err
	}

	return fromPersistence(updated, shared), nil
}
