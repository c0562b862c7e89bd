package main

import (
	_ "embed"
	"log"
	"os"
	"time"

	"github.com/AntonStoeckl/lending-library-go/lending/shell/config"
)

//go:embed seed.yaml
var defaultSeed []byte

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed: %v", err)
	}

	d, err := newDemo(cfg, seed, logger, os.Stdout, time.Now())
	if err != nil {
		log.Fatalf("Failed to set up demo: %v", err)
	}

	if err = d.run(); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

func loadSeed(path string) (config.Seed, error) {
	if path == "" {
		return config.ParseSeed(defaultSeed)
	}

	return config.LoadSeed(path)
}
