package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Lesaloon/MR-Label-Converter/types"
	"github.com/Lesaloon/MR-Label-Converter/watcher"
)

func init() {
	mustLoadEnvVariables()
}

func main() {
	settle, _ := strconv.Atoi(os.Getenv("WATCH_SETTLE_SECONDS"))
	if settle <= 0 {
		settle = 3
	}

	cfg := types.Config{
		SettleTime: time.Duration(settle) * time.Second,
		SourceDir:  envOr("WATCH_SOURCE_DIR", "data/incoming"),
		OutputDir:  envOr("WATCH_OUTPUT_DIR", "data/converted"),
		ArchiveDir: envOr("WATCH_ARCHIVE_DIR", "data/archive"),
		BadDir:     envOr("WATCH_BAD_DIR", "data/bad"),
		Conversion: types.DefaultConversionConfig(),
	}

	watcher.New(cfg).Run()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustLoadEnvVariables() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using process environment")
	}
}
