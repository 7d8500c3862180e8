package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck-api/config"
	"github.com/quizdeck/quizdeck-api/database"
	_ "github.com/quizdeck/quizdeck-api/docs" // Swagger docs - auto-generated
	"github.com/quizdeck/quizdeck-api/internal/authn"
	"github.com/quizdeck/quizdeck-api/internal/controller"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/quizdeck/quizdeck-api/internal/logger"
	"github.com/quizdeck/quizdeck-api/internal/middleware"
	"github.com/quizdeck/quizdeck-api/internal/repository"
	"github.com/quizdeck/quizdeck-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quizdeck API
// @version 1.0
// @description Backend-for-frontend for teacher quiz and student roster management.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			fx.Annotate(authn.NewClient, fx.As(new(authn.Provider))),
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewStudentRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewQuizService,
			service.NewStudentService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewQuizController,
			controller.NewStudentController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(InitLogger),
		fx.Invoke(database.Migrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.Production)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Request logging through Zerolog rather than Gin's default writer.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))

	// Boundary first so it formats errors from everything registered after
	// it, recovery included.
	r.Use(middleware.ErrorBoundary(cfg.Production))
	r.Use(middleware.Recovery())

	origin := cfg.Cors.AllowedOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(middleware.NotFoundHandler)

	return r
}

func registerRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	provider authn.Provider,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	studentCtrl *controller.StudentController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{OK: true})
	})

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/teacher/login", authCtrl.Login)
	}

	requireAuth := middleware.RequireTeacherAuth(cfg, provider, db)

	quizGroup := router.Group("/api/quizzes", requireAuth)
	{
		quizGroup.GET("", quizCtrl.ListQuizzes)
		quizGroup.GET("/:id", quizCtrl.GetQuiz)
		quizGroup.POST("", quizCtrl.CreateQuiz)
		quizGroup.PATCH("/:id", quizCtrl.UpdateQuiz)
		quizGroup.DELETE("/:id", quizCtrl.DeleteQuiz)
	}

	studentGroup := router.Group("/api/students", requireAuth)
	{
		studentGroup.GET("", studentCtrl.ListStudents)
		studentGroup.POST("", studentCtrl.CreateStudent)
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	provider authn.Provider,
	authCtrl *controller.AuthController,
	quizCtrl *controller.QuizController,
	studentCtrl *controller.StudentController,
) {
	registerRoutes(router, cfg, db, provider, authCtrl, quizCtrl, studentCtrl)

	// Serverless hosts own the socket; routes are wired but nothing listens.
	if cfg.Serverless {
		log.Info().Msg("Serverless host detected, skipping listen")
		return
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quizdeck API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
