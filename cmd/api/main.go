package main

import (
	"log"

	"github.com/bubom6755/portfolio-backend/config"
	"github.com/bubom6755/portfolio-backend/internal/bootstrap"
	"github.com/bubom6755/portfolio-backend/internal/chat/llm"
	chatservice "github.com/bubom6755/portfolio-backend/internal/chat/service"
	"github.com/bubom6755/portfolio-backend/internal/keepalive"
	"github.com/bubom6755/portfolio-backend/internal/projects/store"
	"github.com/bubom6755/portfolio-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	projectStore := store.New(cfg.Storage.ProjectsFile)

	uploader, err := uploads.New(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatalf("failed to prepare uploads dir: %v", err)
	}

	var client *llm.Client
	if cfg.OpenAI.APIKey != "" {
		client = llm.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		log.Printf("OpenAI client initialized (model %s)", cfg.OpenAI.Model)
	}
	chat := chatservice.New(client)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config:   cfg,
		Store:    projectStore,
		Uploader: uploader,
		Chat:     chat,
	})

	ka := keepalive.NewScheduler(cfg.App.KeepaliveURL)
	ka.Start()
	defer ka.Stop()

	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
