package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conversion-relay-service/internal/config"
	"conversion-relay-service/internal/relay/adapters/capi"
	relayHttp "conversion-relay-service/internal/relay/adapters/http/fiber"
	"conversion-relay-service/internal/relay/adapters/secret"
	relayUsecase "conversion-relay-service/internal/relay/core/usecase"
	"conversion-relay-service/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "conversion-relay-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.AccessToken == "" {
		// Not fatal: the relay answers 500 per request until configured.
		log.Println("CAPI_ACCESS_TOKEN is not set, forwarding will fail")
	}

	// Metrics side listener
	telemetry.Serve(cfg.MetricsAddr)

	// Upstream client + secret provider
	capiClient := capi.NewClient(cfg.UpstreamBaseURL, nil)
	secrets := secret.Static(cfg.AccessToken)

	// Usecases
	forwardUC := relayUsecase.NewForwardEventUseCase(capiClient, secrets, log.Default())

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	relayHandler := relayHttp.NewRelayHandler(forwardUC)
	relayHttp.RegisterRoutes(app, relayHandler)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("relay listening on %s (metrics on %s)", cfg.ListenAddr, cfg.MetricsAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
