package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"studio-booking-server/config"
	"studio-booking-server/database"
	ws "studio-booking-server/websocket"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Load()
	os.Exit(m.Run())
}

var testDBSeq int64

// setupTestDB opens a fresh in-memory database with the production
// schema and installs it as the package-global connection.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	database.DB = db
	return db
}

// setupTestNotifier wires a notifier with a running hub so handlers can
// persist and queue notifications during tests.
func setupTestNotifier(t *testing.T) {
	t.Helper()
	hub := ws.NewHub()
	go hub.Run()
	Notifier = ws.NewNotifier(hub)
}

// fakeStore is an in-memory ObjectStore. DeleteErr simulates bucket
// failures.
type fakeStore struct {
	mu        sync.Mutex
	Uploaded  []string
	Deleted   []string
	DeleteErr error
}

func (f *fakeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Uploaded = append(f.Uploaded, key)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, key)
	return f.DeleteErr
}

func (f *fakeStore) SignedURL(ctx context.Context, key string) (string, error) {
	return "https://cdn.test/" + key + "?sig=test", nil
}

// performJSON issues a request with a JSON body against the router.
func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// asAdmin simulates the identity the auth middleware attaches.
func asAdmin(userID uint, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Set("user_role", "Admin")
	}
}
