package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"litverse/config"
	"litverse/models"
	"litverse/routes"
	"litverse/utils"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.SeedDB {
		if err := utils.SeedCatalog(db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	r := routes.SetupRouter(db)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.Author{}, &models.Publisher{}, &models.Book{},
		&models.Director{}, &models.ProductionCompany{}, &models.Movie{},
		&models.Read{}, &models.Watched{},
	)
}
