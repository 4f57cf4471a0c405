// Package bootstrap builds the application dependency graph: database (with
// in-memory fallback in dev), object store, LLM client, repositories,
// services, handlers, and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resumegen-backend/internal/analyzer"
	"resumegen-backend/internal/extract"
	"resumegen-backend/internal/generations"
	"resumegen-backend/internal/llm"
	openai "resumegen-backend/internal/llm/openai"
	"resumegen-backend/internal/profile"
	"resumegen-backend/internal/shared/config"
	"resumegen-backend/internal/shared/server"
	"resumegen-backend/internal/shared/storage/db"
	"resumegen-backend/internal/shared/storage/object"
	localstore "resumegen-backend/internal/shared/storage/object/local"
	s3store "resumegen-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	LLM    llm.Client

	ProfileRepo     profile.Repo
	GenerationsRepo generations.Repo

	ProfileService     *profile.Service
	AnalyzerService    *analyzer.Service
	GenerationsService *generations.Service

	ProfileHandler     *profile.Handler
	GenerationsHandler *generations.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    llmClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		ProfileHandler:     app.ProfileHandler,
		GenerationsHandler: app.GenerationsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "openai" {
		return openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
	}
	return llm.PlaceholderClient{}, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var profileRepo profile.Repo
	var generationsRepo generations.Repo
	if app.DB != nil {
		profileRepo = &profile.PGRepo{DB: app.DB}
		generationsRepo = &generations.PGRepo{DB: app.DB}
	} else {
		profileRepo = profile.NewMemoryRepo()
		generationsRepo = generations.NewMemoryRepo()
	}

	profileSvc := profile.NewService(profileRepo, app.Store, extract.Parser{})
	analyzerSvc := analyzer.NewService(app.LLM)
	generationsSvc := &generations.Service{
		Repo:     generationsRepo,
		Profiles: profileSvc,
		Analyzer: analyzerSvc,
		LLM:      app.LLM,
		Provider: app.Config.LLMProvider,
		Model:    app.Config.LLMModel,
	}

	app.ProfileRepo = profileRepo
	app.GenerationsRepo = generationsRepo
	app.ProfileService = profileSvc
	app.AnalyzerService = analyzerSvc
	app.GenerationsService = generationsSvc
	app.ProfileHandler = profile.NewHandler(profileSvc)
	app.GenerationsHandler = generations.NewHandler(generationsSvc)
}
