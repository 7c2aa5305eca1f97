package auth

import (
	"context"
	"fmt"

	"github.com/jotter/notes-api/persistence/v1/user"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user with a bcrypt hashed password and returns the
// public profile. The unique index on username backstops the lookup under
// concurrent signups.
func Register(ctx context.Context, s SignUp) (Profile, error) {
	existing, err := user.FindByUsername(ctx, s.Username)
	if err != nil {
		return Profile{}, err
	}
	if existing.Id != 0 {
		return Profile{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), cost())
	if err != nil {
		return Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := user.Insert(ctx, user.NewUser{
		Username:     s.Username,
		Email:        s.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return Profile{}, err
	}

	created, err := user.Find(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Id:        created.Id,
		Username:  created.Username,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	}, nil
}
