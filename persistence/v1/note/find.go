package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/jotter/notes-api/sys"
)

// Find returns the zero Note when the id is unknown. Ownership is not
// filtered here; callers decide what the acting user may see.
func Find(ctx context.Context, id uint64) (Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache
	db := sys.R.Database

	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get notes ", id, " from cache: ", err.Error())
	}
	if get != "" {
		var cached Note
		if err := json.Unmarshal([]byte(get), &cached); err != nil {
			logger.Errorf("error parsing cached response for key %s: %s", key, err)
		} else {
			return cached, nil
		}
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT id, userId, title, content, updatedAt, createdAt FROM notes WHERE id = ?")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}
	row := stmt.QueryRowContext(dbCtx, id)

	var found Note
	if err := row.Scan(&found.Id, &found.UserId, &found.Title, &found.Content, &found.UpdatedAt, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, nil
		}
		return Note{}, fmt.Errorf("error parsing db data: %w", err)
	}

	if data, err := json.Marshal(found); err != nil {
		logger.Errorf("error parsing data to cache for key %s: %s", key, err)
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer tcCancel()

		if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set notes ", id, " into cache: ", err.Error())
		}
	}

	return found, nil
}

// Shared returns the ids of the users the note is shared with
func Shared(ctx context.Context, noteId uint64) ([]uint64, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "SELECT userId FROM noteShares WHERE noteId = ? ORDER BY userId ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare shares stmt: %w", err)
	}
	rows, err := stmt.QueryContext(dbCtx, noteId)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares stmt: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var userIds []uint64
	for rows.Next() {
		var userId uint64
		if err := rows.Scan(&userId); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		userIds = append(userIds, userId)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shares: %w", err)
	}

	return userIds, nil
}

// invalidate drops the cached copy of a note after a mutation
func invalidate(ctx context.Context, id uint64) {
	logger := sys.R.Log
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Del(tcCtx, fmt.Sprintf(noteKey, id)).Err(); err != nil {
		logger.Error("failure to invalidate notes ", id, " in cache: ", err.Error())
	}
}
