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

	_ "github.com/jhoicas/paofresquim-api/docs"
	appanalytics "github.com/jhoicas/paofresquim-api/internal/application/analytics"
	"github.com/jhoicas/paofresquim-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/paofresquim-api/internal/infrastructure/pdf"
	"github.com/jhoicas/paofresquim-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/paofresquim-api/internal/interfaces/http"
	"github.com/jhoicas/paofresquim-api/pkg/config"
	"github.com/jhoicas/paofresquim-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := log.Zerolog().WithContext(context.Background())
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()
	if backend.Driver == config.DriverMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	}

	services := usecase.NewServices(backend.Store, time.Now)
	dashboardUC := appanalytics.NewDashboardUseCase(backend.Store, time.Now)
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.TraceMiddleware(log.Zerolog()))
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pão Fresquim API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Services:    services,
		DashboardUC: dashboardUC,
		Receipts:    receipts,
		JWTSecret:   cfg.JWT.Secret,
		StoreDriver: backend.Driver,
		Ping:        backend.Ping,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
