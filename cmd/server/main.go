package main

import (
	"context"
	"log"

	"audio_recorder/config"
	"audio_recorder/internal/server"

	_ "audio_recorder/cmd/server/docs"
)

// @title           Audio Recorder API
// @version         1.0
// @description     Accepts Opus audio payloads over HTTP and converts them to WAV recordings in the background.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	ctx := context.Background()
	s := server.NewServer(cfg)
	s.Run(ctx, cfg)
}
