package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
)

// Search matches q against note titles and contents across all notes,
// relevance ordered. Callers reject an empty q before reaching here.
func Search(ctx context.Context, q string) ([]Note, error) {
	found, err := note.Search(ctx, q)
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
