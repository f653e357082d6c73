package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"profile-forge-backend/internal/shared/config"
)

func testConfig(t *testing.T, documentStore string) config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return config.Config{
		Env:               "dev",
		CORSAllowOrigin:   []string{"http://localhost:9002"},
		UploadsDir:        filepath.Join(t.TempDir(), "uploads"),
		ObjectStoreType:   "local",
		DocumentStoreType: documentStore,
		MongoDatabase:     "profileforge",
	}
}

func TestBuildMissingMongoURIRunsDegraded(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t, "mongo"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close(context.Background()) })

	if app.SubmissionsRepo != nil || app.SubmissionsService.PersistenceEnabled() {
		t.Fatalf("expected degraded mode without MONGO_URI")
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if !strings.Contains(w.Body.String(), `"documentStore":"disabled"`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}

func TestBuildMissingDatabaseURLRunsDegraded(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t, "postgres"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if app.DB != nil || app.SubmissionsRepo != nil {
		t.Fatalf("expected no database handle")
	}
}

func TestBuildMemoryStore(t *testing.T) {
	app, err := Build(context.Background(), testConfig(t, "memory"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !app.SubmissionsService.PersistenceEnabled() {
		t.Fatalf("expected memory persistence")
	}
	if got := app.Health.Status().DocumentStore; got != "memory" {
		t.Fatalf("expected memory mode, got %q", got)
	}
}

func TestBuildS3RequiresBucket(t *testing.T) {
	cfg := testConfig(t, "none")
	cfg.ObjectStoreType = "s3"
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without S3_BUCKET")
	}
}
