package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jotter/notes-api/app/messaging/consumers/v1/notes"
	"github.com/jotter/notes-api/business/v1/note"
	"github.com/jotter/notes-api/persistence/v1/schema"
	env2 "github.com/jotter/notes-api/platform/env"
	"github.com/jotter/notes-api/platform/logger"
	"github.com/jotter/notes-api/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"os"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

type NoteTests struct {
	topic *pubsub.Topic
}

func TestNote(t *testing.T) {
	log, err := logger.New("Notes-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.PingTimeout = env2.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env2.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env2.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env2.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env2.DurationDefault(log, "CACHE_CACHE_TTL", "24h")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open("ramsql", "MessagingNoteTest")
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := mysqlDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = mysqlDb
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	// redis
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr: sys.Configs.Cache.ConnectionURL,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rdb.Close()
	}()

	sys.R.Cache = rdb

	// =======================================================================================================
	// Database setup

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background())

	batch := []string{
		`INSERT INTO users (username, email, passwordHash, createdAt) VALUES ('alice', 'alice@example.com', 'x', ?)`,
	}

	for _, b := range batch {
		n := time.Now().UTC()
		_, err = sys.R.Database.Exec(b, n)
		if err != nil {
			t.Fatalf("sql.Exec: Error: %s\n", err)
		}
	}

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func(tst *testing.T) {
		if err := notes.Consume(withCancel, subscription, 1); err != nil {
			tst.Error("listener error: ", err)
		}
	}(t)

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic}

	noteTests.testInsertSuccess(t)
	noteTests.testReceiveFailureSurfaces(t)
}

func (nt *NoteTests) testInsertSuccess(t *testing.T) {
	event := note.Event{
		Type: "create",
		Data: note.EventNote{
			UserId:  1,
			Title:   "other",
			Content: "other text",
		},
	}

	marshal, err := json.Marshal(event)
	if err != nil {
		t.Fatal("Test testInsertSuccess: failed to parse insert request body")
	}

	if err := nt.topic.Send(context.Background(), &pubsub.Message{
		Body: marshal,
	}); err != nil {
		t.Fatal("Test testInsertSuccess: failed to post message to topic: ", err)
	}

	deadline := time.Now().Add(10 * time.Second)
	var found struct {
		id      uint64
		userId  uint64
		title   string
		content string
	}
	for {
		row := sys.R.Database.QueryRow("SELECT id, userId, title, content FROM notes WHERE id = 1")
		if err := row.Scan(&found.id, &found.userId, &found.title, &found.content); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Test testInsertSuccess: note never showed up in the database")
		}
		time.Sleep(100 * time.Millisecond)
	}

	if found.userId != 1 {
		t.Fatalf("Test testInsertSuccess: should have stored user 1 as owner: %v", found)
	}

	if found.title != "other" {
		t.Fatalf("Test testInsertSuccess: should have stored \"other\" as title: %v", found)
	}

	if found.content != "other text" {
		t.Fatalf("Test testInsertSuccess: should have stored \"other text\" as content: %v", found)
	}
}

func (nt *NoteTests) testReceiveFailureSurfaces(t *testing.T) {
	// a subscription that fails outside of cancellation must not be reported
	// as a clean stop
	topic := mempubsub.NewTopic()
	deadSub := mempubsub.NewSubscription(topic, 1*time.Second)
	_ = deadSub.Shutdown(context.Background())
	_ = topic.Shutdown(context.Background())

	if err := notes.Consume(context.Background(), deadSub, 1); err == nil {
		t.Fatal("Test testReceiveFailureSurfaces: should have returned the receive error")
	}
}
