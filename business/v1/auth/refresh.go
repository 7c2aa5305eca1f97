package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/jotter/notes-api/platform/token"
	"github.com/jotter/notes-api/sys"
)

const refreshKey = "refresh.%s"

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued for the user it belonged to
func Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	cache := sys.R.Cache

	key := fmt.Sprintf(refreshKey, refreshToken)

	// GETDEL consumes the token in one step; of two concurrent refreshes
	// with the same token only one gets the value back
	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	value, err := cache.GetDel(tcCtx, key).Result()
	if err == redis.Nil {
		return TokenPair{}, ErrInvalidRefresh
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to consume refresh token: %w", err)
	}

	userId, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return TokenPair{}, ErrInvalidRefresh
	}

	return issuePair(ctx, userId)
}

// issuePair signs an access token and stores a fresh single-use refresh token
func issuePair(ctx context.Context, userId uint64) (TokenPair, error) {
	cache := sys.R.Cache

	access, err := token.Issue(userId, []byte(sys.Configs.Auth.Secret), sys.Configs.Auth.AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refresh := hex.EncodeToString(raw)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	key := fmt.Sprintf(refreshKey, refresh)
	if err := cache.Set(tcCtx, key, strconv.FormatUint(userId, 10), sys.Configs.Auth.RefreshTokenTTL).Err(); err != nil {
		return TokenPair{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}
