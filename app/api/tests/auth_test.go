package tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jotter/notes-api/app/api/handlers"
	"github.com/jotter/notes-api/business/v1/auth"
	"github.com/jotter/notes-api/persistence/v1/schema"
	"github.com/jotter/notes-api/platform/env"
	"github.com/jotter/notes-api/platform/logger"
	"github.com/jotter/notes-api/sys"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/proullon/ramsql/driver"
)

type AuthTests struct {
	app  http.Handler
	pair auth.TokenPair
}

func TestAuth(t *testing.T) {
	log, err := logger.New("Notes-API-Tests")
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
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	sys.Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	sys.Configs.Auth.Secret = "auth-test-secret"
	sys.Configs.Auth.AccessTokenTTL = 15 * time.Minute
	sys.Configs.Auth.RefreshTokenTTL = time.Hour
	// min cost keeps the hashing fast
	sys.Configs.Auth.BcryptCost = 4

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open("ramsql", "AuthTest")
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

	// =======================================================================================================
	// Setup router
	engine := gin.Default()

	handlers.MapAuth(engine)
	handlers.MapApi(engine)

	tests := AuthTests{app: engine}

	// =======================================================================================================
	// Run tests

	tests.signUp201(t)
	tests.signUpDuplicate409(t)
	tests.signUpShortPassword400(t)
	tests.login200(t)
	tests.loginWrongPassword401(t)
	tests.listWithoutToken401(t)
	tests.listWithBadToken401(t)
	tests.listWithToken200(t)
	tests.refresh200(t)
	tests.refreshReuse401(t)
	tests.refreshConcurrent401(t)
}

func (at *AuthTests) signUp201(t *testing.T) {
	body := []byte(`{"username": "alice", "password": "a-safe-password", "email": "alice@example.com"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("Test signUp201: Should receive a status code of 201 for the response: %v, %s", w.Code, w.Body)
	}

	var resp struct {
		User    auth.Profile `json:"user"`
		Message string       `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test signUp201: Should be able to unmarshal the response: %v", err)
	}

	if resp.User.Id == 0 {
		t.Fatalf("Test signUp201: Should have received a user id in the response: %v", resp)
	}
	if resp.User.Username != "alice" {
		t.Fatalf("Test signUp201: Should have received \"alice\" as username in the response: %v", resp)
	}
	if resp.Message != "user created successfully" {
		t.Fatalf("Test signUp201: Should have received the creation message in the response: %v", resp)
	}
}

func (at *AuthTests) signUpDuplicate409(t *testing.T) {
	body := []byte(`{"username": "alice", "password": "a-safe-password"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("Test signUpDuplicate409: Should receive a status code of 409 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) signUpShortPassword400(t *testing.T) {
	body := []byte(`{"username": "bob", "password": "short"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test signUpShortPassword400: Should receive a status code of 400 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) login200(t *testing.T) {
	body := []byte(`{"username": "alice", "password": "a-safe-password"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test login200: Should receive a status code of 200 for the response: %v, %s", w.Code, w.Body)
	}

	if err := json.NewDecoder(w.Body).Decode(&at.pair); err != nil {
		t.Fatalf("Test login200: Should be able to unmarshal the response: %v", err)
	}

	if at.pair.Access == "" || at.pair.Refresh == "" {
		t.Fatalf("Test login200: Should have received both tokens in the response: %v", at.pair)
	}
}

func (at *AuthTests) loginWrongPassword401(t *testing.T) {
	body := []byte(`{"username": "alice", "password": "not-her-password"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test loginWrongPassword401: Should receive a status code of 401 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) listWithoutToken401(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test listWithoutToken401: Should receive a status code of 401 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) listWithBadToken401(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	r.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test listWithBadToken401: Should receive a status code of 401 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) listWithToken200(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	r.Header.Set("Authorization", "Bearer "+at.pair.Access)
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test listWithToken200: Should receive a status code of 200 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) refresh200(t *testing.T) {
	body := []byte(fmt.Sprintf(`{"refresh": %q}`, at.pair.Refresh))
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test refresh200: Should receive a status code of 200 for the response: %v, %s", w.Code, w.Body)
	}

	var pair auth.TokenPair
	if err := json.NewDecoder(w.Body).Decode(&pair); err != nil {
		t.Fatalf("Test refresh200: Should be able to unmarshal the response: %v", err)
	}

	if pair.Refresh == "" || pair.Refresh == at.pair.Refresh {
		t.Fatalf("Test refresh200: Should have received a rotated refresh token in the response: %v", pair)
	}
}

func (at *AuthTests) refreshReuse401(t *testing.T) {
	// the token was consumed by refresh200
	body := []byte(fmt.Sprintf(`{"refresh": %q}`, at.pair.Refresh))
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test refreshReuse401: Should receive a status code of 401 for the response: %v, %s", w.Code, w.Body)
	}
}

func (at *AuthTests) refreshConcurrent401(t *testing.T) {
	// two refreshes racing on the same token; exactly one may win
	body := []byte(`{"username": "alice", "password": "a-safe-password"}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	at.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test refreshConcurrent401: Should be able to log in again: %v, %s", w.Code, w.Body)
	}

	var pair auth.TokenPair
	if err := json.NewDecoder(w.Body).Decode(&pair); err != nil {
		t.Fatalf("Test refreshConcurrent401: Should be able to unmarshal the response: %v", err)
	}

	codes := make(chan int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := []byte(fmt.Sprintf(`{"refresh": %q}`, pair.Refresh))
			r := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewReader(b))
			w := httptest.NewRecorder()
			at.app.ServeHTTP(w, r)
			codes <- w.Code
		}()
	}
	wg.Wait()
	close(codes)

	var ok, unauthorized int
	for code := range codes {
		switch code {
		case http.StatusOK:
			ok++
		case http.StatusUnauthorized:
			unauthorized++
		}
	}
	if ok != 1 || unauthorized != 1 {
		t.Fatalf("Test refreshConcurrent401: Should have exactly one winner: %d ok, %d unauthorized", ok, unauthorized)
	}
}
