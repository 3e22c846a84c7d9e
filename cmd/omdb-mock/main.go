package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"omdb_smoke_testing/internal/mockserver"
)

func main() {
	var (
		port    = flag.String("port", "9100", "port to listen on")
		apiKey  = flag.String("apikey", "", "accepted API key (empty accepts any)")
		latency = flag.Duration("latency", 0, "artificial delay added to every response")
		verbose = flag.Bool("verbose", false, "enable request logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           mockserver.New(mockserver.Options{APIKey: *apiKey, Latency: *latency, Logger: logger}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("mock omdb listening", "addr", srv.Addr, "latency", *latency)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
