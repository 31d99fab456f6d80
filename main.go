package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modulku_backend/internals/configs"
	"modulku_backend/internals/features/catalog/repository"
	"modulku_backend/internals/seeds"
	"modulku_backend/internals/server"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	store := repository.NewMemoryStore()
	if cfg.SeedData {
		seeds.RunAllSeeds(context.Background(), store)
	}

	app := server.NewApp(cfg, store)

	// Start server non-blocking
	go func() {
		log.Printf("✅ Server is running on port no - %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("❌ shutdown: %v", err)
	}
	log.Println("👋 Server stopped")
}
