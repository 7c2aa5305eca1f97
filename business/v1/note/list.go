package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
)

// List returns every note owned by userId, insertion order
func List(ctx context.Context, userId uint64) ([]Note, error) {
	found, err := note.ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(found))
	for _, n := range found {
		shared, err := note.Shared(ctx, n.Id)
		if err != nil {
			return nil, err
		}
		notes = append(notes, fromPersistence(n, shared))
	}
	return notes, nil
}
