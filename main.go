// @title Alumni Portal API
// @version 1.0
// @description Key-value backed resource API of the alumni portal.
// @host localhost:8000
// @BasePath /make-server-9b4de1de
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "alumni-portal/docs"

	"alumni-portal/config"
	"alumni-portal/database"
	"alumni-portal/internal/routes"
	"alumni-portal/internal/services"
)

func main() {
	// Load configuration (.env first, then the process environment)
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}
	log.Printf("env: JWT_SECRET len=%d", len(cfg.JWTSecret))

	// Connect the key-value store
	store, err := database.OpenStore(cfg)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}

	if cfg.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		msg, err := services.New(store, nil, services.Options{}).Seed.InitSampleData(ctx)
		cancel()
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Println("seed:", msg)
	}

	app := routes.NewApp(routes.Deps{Store: store, Config: cfg})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Printf("close store: %v", err)
	}
}
