package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sambbaron/posts/internal/config"
	"github.com/sambbaron/posts/internal/db"
	"github.com/sambbaron/posts/internal/handlers"
	"github.com/sambbaron/posts/internal/repository"
	"github.com/sambbaron/posts/internal/repository/memory"
	"github.com/sambbaron/posts/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	repo, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	h := handlers.NewHandler(repo)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h, cfg.CorsAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("listening on %s (store=%s)", srv.Addr, cfg.Store)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

// openStore opens the configured repository and returns its close func.
func openStore(cfg config.Config) (repository.PostRepository, func(), error) {
	if cfg.Store == config.StoreMemory {
		return memory.NewPostRepository(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxOpen:     cfg.DBMaxOpen,
		MaxIdle:     cfg.DBMaxIdle,
		MaxLifetime: cfg.DBMaxLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg.AutoMigrate {
		if err := db.CreateTables(ctx, dbConn); err != nil {
			dbConn.Close()
			return nil, nil, err
		}
	}

	return postgres.NewPostRepository(dbConn), func() { dbConn.Close() }, nil
}
