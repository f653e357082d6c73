package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"profile-forge-backend/internal/services/health"
	"profile-forge-backend/internal/shared/config"
	"profile-forge-backend/internal/shared/server"
	"profile-forge-backend/internal/shared/storage/db"
	"profile-forge-backend/internal/shared/storage/mongodb"
	"profile-forge-backend/internal/shared/storage/object"
	localstore "profile-forge-backend/internal/shared/storage/object/local"
	s3store "profile-forge-backend/internal/shared/storage/object/s3"
	"profile-forge-backend/internal/shared/telemetry"
	"profile-forge-backend/internal/submissions"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Mongo  *mongo.Client
	Store  object.ObjectStore

	// SubmissionsRepo is nil in degraded mode.
	SubmissionsRepo    submissions.Repo
	SubmissionsService *submissions.Service
	SubmissionsHandler *submissions.Handler
	Health             *health.Service
}

// Build prepares shared dependencies and the router.
//
// A document store that fails to initialize is logged and left nil; the service
// keeps accepting uploads without metadata records. Object store failures are fatal.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Store: store}

	repoMode, err := buildRepo(ctx, app)
	if err != nil {
		telemetry.Error("document_store.init.failed", map[string]any{
			"mode": cfg.DocumentStoreType,
			"err":  err.Error(),
		})
		app.SubmissionsRepo = nil
		repoMode = ""
	}

	app.SubmissionsService = submissions.NewService(app.Store, app.SubmissionsRepo)
	app.SubmissionsHandler = submissions.NewHandler(app.SubmissionsService)
	app.Health = health.NewService(repoMode, cfg.ObjectStoreType)

	if app.SubmissionsHandler == nil {
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		Health:      app.Health,
		Submissions: app.SubmissionsHandler,
	})

	telemetry.Info("app.ready", map[string]any{
		"object_store":   cfg.ObjectStoreType,
		"document_store": app.Health.Status().DocumentStore,
		"env":            cfg.Env,
	})
	return app, nil
}

// Close releases the document store handles.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Mongo != nil {
		if err := a.Mongo.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disconnect mongo: %w", err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.UploadsDir)
	}
}

// buildRepo connects the configured document store and returns the mode it runs in.
func buildRepo(ctx context.Context, app *App) (string, error) {
	cfg := app.Config
	switch cfg.DocumentStoreType {
	case "none":
		telemetry.Warn("document_store.disabled", nil)
		return "", nil
	case "memory":
		app.SubmissionsRepo = submissions.NewMemoryRepo()
		return "memory", nil
	case "postgres":
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return "", err
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return "", fmt.Errorf("run migrations: %w", err)
		}
		app.DB = sqlDB
		app.SubmissionsRepo = &submissions.PGRepo{DB: sqlDB}
		return "postgres", nil
	default:
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return "", err
		}
		app.Mongo = client
		app.SubmissionsRepo = submissions.NewMongoRepo(client.Database(cfg.MongoDatabase))
		return "mongo", nil
	}
}
