package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/florandefossez/capsules/internal/config"
	"github.com/florandefossez/capsules/internal/database"
	"github.com/florandefossez/capsules/internal/handler"
	"github.com/florandefossez/capsules/internal/middleware"
	"github.com/florandefossez/capsules/internal/repository"
	"github.com/florandefossez/capsules/internal/service"
	"github.com/florandefossez/capsules/internal/session"
)

// main is the entrypoint for the capsule catalog web application.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting capsule catalog")

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// Repositories
	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	capsuleRepo := repository.NewCapsuleRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo)
	catalogSvc := service.NewCatalogService(capsuleRepo, brandRepo)
	adminSvc := service.NewAdminService(capsuleRepo, brandRepo)

	// Sessions & handlers
	sessions := session.NewManager(cfg.SessionSecret)
	authHandler := handler.NewAuthHandler(authSvc, sessions)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	editHandler := handler.NewEditHandler(adminSvc, catalogSvc)
	imageHandler := handler.NewImageHandler(cfg.ImagesDir, cfg.DefaultImage)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging())
	router.LoadHTMLGlob("internal/view/templates/*.html")
	setupRoutes(router, authHandler, catalogHandler, editHandler, imageHandler, sessions)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// setupRoutes registers all routes.
func setupRoutes(
	router *gin.Engine,
	auth *handler.AuthHandler,
	catalog *handler.CatalogHandler,
	edit *handler.EditHandler,
	images *handler.ImageHandler,
	sessions *session.Manager,
) {
	// Public catalog
	router.GET("/", catalog.Index)
	router.GET("/info/:id", catalog.Info)
	router.GET("/search", catalog.ShowSearch)
	router.POST("/search", catalog.Search)
	router.GET("/brand", catalog.Brands)
	router.GET("/images/:id", images.GetImage)

	// Login
	router.GET("/login", auth.ShowLogin)
	router.POST("/login", auth.Login)

	// Guarded routes
	guard := middleware.RequireLogin(sessions)
	router.GET("/logout", guard, auth.Logout)
	router.POST("/logout", guard, auth.Logout)
	router.GET("/edit", guard, edit.ShowForm)
	router.POST("/edit", guard, edit.Submit)
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
