package main

import (
	"flag"
	"log"
	"os"

	"PriceFeed/internal/di"
	"PriceFeed/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s symbols=%v", cfg.Environment, cfg.Feed.DefaultSymbols)
	if cfg.Finnhub.APIKey == "" {
		log.Printf("FINNHUB_API_KEY is not set; price feed requests will answer 500 until it is")
	}

	app, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run blocks until signal
	err = app.Run()
	cleanup()
	if err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
