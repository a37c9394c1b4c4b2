package main

import (
	"fmt"
	"log"

	_ "tosraider/docs"
	openaiadapter "tosraider/internal/adapter/openai"
	"tosraider/internal/adapter/repository/postgres"
	"tosraider/internal/delivery/http/handler"
	"tosraider/internal/delivery/http/middleware"
	"tosraider/internal/usecase/action"
	"tosraider/internal/usecase/analysis"
	"tosraider/internal/usecase/auth"
	"tosraider/internal/usecase/usage"
	"tosraider/pkg/config"
	"tosraider/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title           TOS Raider API
// @version         1.0
// @description     Clause-level Terms-of-Service analysis and remediation actions
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("connected to database")

	// initialize openai client
	chatClient := openaiadapter.NewChatClient(cfg.OpenAIKey, cfg.OpenAIChatModel)

	// initialize repositories
	userRepo := postgres.NewUserRepository(db)
	usageRepo := postgres.NewUsageRepository(db)
	docRepo := postgres.NewDocumentRepository(db)
	clauseRepo := postgres.NewClauseRepository(db)
	actionRepo := postgres.NewActionRepository(db)

	// initialize usecases
	limiter := usage.NewLimiter(usageRepo)
	authUsecase := auth.NewAuthUsecase(userRepo, usageRepo, cfg.JWTSecret, cfg.JWTExpiration)
	analysisUsecase := analysis.NewAnalysisUsecase(
		docRepo,
		clauseRepo,
		limiter,
		chatClient,
		cfg.MaxClausesPerDocument,
		cfg.MinChunkLength,
	)
	actionUsecase := action.NewActionUsecase(clauseRepo, actionRepo, chatClient)

	// initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase)
	analyzeHandler := handler.NewAnalyzeHandler(analysisUsecase)
	actionHandler := handler.NewActionHandler(actionUsecase)
	docHandler := handler.NewDocumentHandler(analysisUsecase)
	usageHandler := handler.NewUsageHandler(limiter)

	app := fiber.New()

	// request log + permissive CORS (preflight included)
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger route
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Public routes
	api := app.Group("/api")
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Protected routes
	protected := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	protected.Post("/tos/analyze", analyzeHandler.Analyze)
	protected.Post("/actions/generate", actionHandler.Generate)

	protected.Get("/documents", docHandler.List)
	protected.Get("/documents/:id", docHandler.GetByID)
	protected.Get("/clauses/:id/actions", actionHandler.ListByClause)
	protected.Get("/usage", usageHandler.Get)

	log.Printf("server starting on port %d", cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
