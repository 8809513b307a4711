package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestionale-hr/personale-api/internal/application/auth"
	"github.com/gestionale-hr/personale-api/internal/application/usecase"
	"github.com/gestionale-hr/personale-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestionale-hr/personale-api/internal/interfaces/http"
	"github.com/gestionale-hr/personale-api/migrations"
	"github.com/gestionale-hr/personale-api/pkg/config"
	"github.com/gestionale-hr/personale-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	if err := migrations.Up(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrazioni schema")
	}

	userRepo := postgres.NewUserRepository(pool)
	operatoreRepo := postgres.NewOperatoreRepository(pool)
	responsabileRepo := postgres.NewResponsabileRepository(pool)
	assocRepo := postgres.NewAssociazioneRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	operatoreUC := usecase.NewOperatoreUseCase(txRunner, operatoreRepo, assocRepo, cfg.Auth.BcryptCost)
	responsabileUC := usecase.NewResponsabileUseCase(txRunner, responsabileRepo, cfg.Auth.BcryptCost)
	authUC := auth.NewAuthUseCase(userRepo, operatoreRepo, responsabileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Gestionale Personale API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OperatoreUC:    operatoreUC,
		ResponsabileUC: responsabileUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	// Bundle statico della UI di amministrazione, se presente accanto al binario.
	if _, err := os.Stat("./web/dist"); err == nil {
		app.Static("/", "./web/dist")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura del server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
