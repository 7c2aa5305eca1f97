package auth

import (
	"context"

	"github.com/jotter/notes-api/persistence/v1/user"
	"github.com/jotter/notes-api/sys"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the credentials and mints a token pair
func Login(ctx context.Context, c Credentials) (TokenPair, error) {
	found, err := user.FindByUsername(ctx, c.Username)
	if err != nil {
		return TokenPair{}, err
	}
	if found.Id == 0 {
		return TokenPair{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(c.Password)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return issuePair(ctx, found.Id)
}

func cost() int {
	if sys.Configs.Auth.BcryptCost > 0 {
		return sys.Configs.Auth.BcryptCost
	}
	return bcrypt.DefaultCost
}
