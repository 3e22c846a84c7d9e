package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"omdb_smoke_testing/internal/config"
	"omdb_smoke_testing/internal/omdb"
	"omdb_smoke_testing/internal/reporter"
	"omdb_smoke_testing/internal/runner"
)

func main() {
	configPath := flag.String("config", "", "config file (.json/.yaml), default "+config.DefaultPath)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := omdb.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout, logger)
	if err != nil {
		log.Fatalf("create omdb client: %v", err)
	}

	fmt.Println("🚀 OMDB API SMOKE TEST")
	fmt.Printf("🔑 API Key: %s\n", maskKey(cfg.APIKey))
	fmt.Printf("🌐 Base URL: %s\n", cfg.BaseURL)
	fmt.Println(strings.Repeat("=", 60))

	rec := reporter.NewRecorder()
	r := runner.New(client, rec, os.Stdout, logger, cfg.SlowThreshold)

	startTime := time.Now()
	r.Run(context.Background())

	rep := reporter.New(cfg, os.Stdout, logger)
	rep.GenerateReport(rec, time.Since(startTime))
}

func maskKey(key string) string {
	if len(key) <= 2 {
		return "***"
	}
	return key[:2] + "***"
}
