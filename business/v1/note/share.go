package note

import (
	"context"
	"github.com/jotter/notes-api/persistence/v1/note"
	"github.com/jotter/notes-api/persistence/v1/user"
)

// Share replaces the note's shared-with set. The note is resolved before the
// targets are validated, so sharing a note you do not own reports ErrNotFound
// rather than a target error. The owner is dropped from the target list: a
// note is never shared with its own owner. Unknown user ids fail the whole
// request with ErrUnknownUser before anything is written.
func Share(ctx context.Context, userId, id uint64, userIds []uint64) (Note, error) {
	owned, err := note.Find(ctx, id)
	if err != nil {
		return Note{}, err
	}
	if owned.Id == 0 || owned.UserId != userId {
		return Note{}, ErrNotFound
	}

	targets := make([]uint64, 0, len(userIds))
	seen := make(map[uint64]bool, len(userIds))
	for _, target := range userIds {
		if target == userId || seen[target] {
			continue
		}
		seen[target] = true
		targets = append(targets, target)
	}

	missing, err := user.MissingIds(ctx, targets)
	if err != nil {
		return Note{}, err
	}
	if len(missing) > 0 {
		return Note{}, ErrUnknownUser
	}

	replaced, err := note.ReplaceShares(ctx, id, userId, targets)
	if err != nil {
		return Note{}, err
	}
	if !replaced {
		return Note{}, ErrNotFound
	}

	return Find(ctx, userId, id)
}
