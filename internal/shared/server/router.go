package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"careervault-backend/internal/documents"
	"careervault-backend/internal/llm"
	"careervault-backend/internal/llm/openai"
	"careervault-backend/internal/matches"
	"careervault-backend/internal/scoring/quality"
	"careervault-backend/internal/shared/config"
	"careervault-backend/internal/shared/metrics"
	"careervault-backend/internal/shared/server/middleware"
	"careervault-backend/internal/shared/server/respond"
	"careervault-backend/internal/shared/storage/db"
	localstore "careervault-backend/internal/shared/storage/object/local"
	"careervault-backend/internal/usage"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SCORE":   {Rate: 1, Burst: 5},
				"DEFAULT": {Rate: 10, Burst: 20},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/api/v1/matches") {
					return "SCORE"
				}
				return "DEFAULT"
			},
		}),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var docRepo documents.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)

	var usageSvc *usage.Service
	if sqlDB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB))
	} else {
		usageSvc = usage.NewService()
	}
	usageHandler := usage.NewHandler(usageSvc)

	var matchRepo matches.Repo
	if sqlDB != nil {
		matchRepo = &matches.PGRepo{DB: sqlDB}
	} else {
		matchRepo = matches.NewMemoryRepo()
	}

	qualityScorer := quality.NewScorer(
		&matches.SectionAnalyzer{Client: newLLMClient(cfg)},
		cfg.QualityCacheTTL,
		nil,
	)
	matchSvc := &matches.Service{Repo: matchRepo, Usage: usageSvc, Quality: qualityScorer}
	matchHandler := matches.NewHandler(matchSvc, docSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "version": cfg.ScoringVersion})
	})
	docHandler.RegisterRoutes(api)
	matchHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// newLLMClient picks the configured provider, falling back to the placeholder
// so quality requests degrade to the zero-confidence path instead of failing.
func newLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider == "openai" {
		apiKey := os.Getenv("OPENAI_API_KEY")
		client, err := openai.NewClient(apiKey, cfg.LLMModel)
		if err == nil {
			return client
		}
		log.Printf("openai client unavailable, using placeholder: %v", err)
	}
	return llm.PlaceholderClient{}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
