package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
)

// Create stores a new note owned by userId
func Create(ctx context.Context, userId uint64, newN NewNote) (Note, error) {
	created, err := note.Insert(ctx, note.NewNote{
		UserId:  userId,
		Title:   newN.Title,
		Content: newN.Content,
	})
	if err != nil {
		return Note{}, err
	}
	return fromPersistence(created, nil), nil
}

func fromPersistence(n note.Note, shared []uint64) Note {
	if shared == nil {
		shared = []uint64{}
	}
	return Note{
		Id:         n.Id,
		Title:      n.Title,
		Content:    n.Content,
		SharedWith: shared,
		UpdatedAt:  n.UpdatedAt,
		CreatedAt:  n.CreatedAt,
	}
}
