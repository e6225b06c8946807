package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nja-rasheed/taskfy/internal/auth"
	"github.com/nja-rasheed/taskfy/internal/config"
	"github.com/nja-rasheed/taskfy/internal/server"
	"github.com/nja-rasheed/taskfy/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("mongodb disconnect: %v", err)
		}
	}()
	log.Println("connected to MongoDB")

	db := client.Database(cfg.Database)
	srv := server.New(
		store.NewTaskStore(db),
		store.NewUserStore(db),
		auth.NewSessions(cfg.JWTSecret, cfg.TokenTTL),
	)

	log.Printf("server starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(ctx, ":"+cfg.Port); err != nil {
		log.Fatal(err)
	}
}
