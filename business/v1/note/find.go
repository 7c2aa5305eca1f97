package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
)

// Find returns the note only when it exists and is owned by userId. Shared
// notes are not readable here; sharing only records visibility intent.
func Find(ctx context.Context, userId, id uint64) (Note, error) {
	found, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if found.Id == 0 || found.UserId != userId {
		return Note{}, ErrNotFound
	}

	shared, err := note.Shared(ctx, id)
	if err != nil {
		return Note{}, err
	}

	return fromPersistence(found, shared), nil
}
