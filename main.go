package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charity_backend/internals/configs"
	database "charity_backend/internals/databases"
	routes "charity_backend/internals/route"
)

// @title           Charity projects API
// @version         1.0
// @description     Charity projects listing and donation recording.
// @BasePath        /
func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	// 🔌 DB connect + pool + schema
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("❌ DB: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ %v", err)
	}

	app := routes.NewApp(cfg, db)

	// 🔒 Keep-Alive & server timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("⏳ Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
}
