package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/medichat/medichat-client/internal/config"
)

func main() {
	fmt.Println("🔍 Validating configuration...")

	if err := godotenv.Load(); err != nil {
		fmt.Printf("⚠️  .env file not found: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Configuration is invalid:\n%v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Configuration is valid!")
	fmt.Printf("📋 Details:\n")
	fmt.Printf("  - API base URL: %s\n", cfg.API.BaseURL)
	fmt.Printf("  - API timeout: %s\n", cfg.API.Timeout)
	fmt.Printf("  - Session backend: %s\n", cfg.Session.Backend)
	if cfg.Session.Backend == "redis" {
		fmt.Printf("  - Redis: %s:%s\n", cfg.Session.RedisHost, cfg.Session.RedisPort)
	} else {
		dir := cfg.Session.FileDir
		if dir == "" {
			dir = "~/.medichat"
		}
		fmt.Printf("  - Session dir: %s\n", dir)
	}
	fmt.Printf("  - Default weight: %.1f kg\n", cfg.Fitness.DefaultWeightKg)
	fmt.Printf("  - Log level: %v\n", cfg.Logger.Level)
	fmt.Printf("  - Log output: %s\n", cfg.Logger.OutputPath)
	fmt.Printf("  - Log format: %s\n", cfg.Logger.Format)
}
