// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/auramart-backend/internal/catalog"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
	"github.com/your-org/auramart-backend/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to the key-value store
	store, err := kv.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to key-value store: %v", err)
	}
	defer store.Close()

	if err := store.Health(); err != nil {
		log.Fatalf("Key-value store health check failed: %v", err)
	}

	// Seed the product catalog
	cat := catalog.New()
	log.Printf("📦 Catalog seeded with %d products", cat.Len())

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, cat, store)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
