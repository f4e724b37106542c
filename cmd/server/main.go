package main

import (
	"log"
	"net/http"
	"time"

	webAdapter "binder/internal/adapters/web"
	"binder/internal/ai"
	"binder/internal/app"
	"binder/internal/auth"
	"binder/internal/config"
	"binder/internal/core"
	"binder/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("binder.yml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	kv, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer kv.Close()

	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: openai_api_key is not set; chat will answer with the fallback message")
	}

	provider := auth.NewMemoryProvider()
	codes := core.NewCodeService(kv)
	sheet := core.NewMasterSheet(kv)
	assistant := ai.NewAssistant(cfg.OpenAIAPIKey)

	svc := app.NewBinderService(
		provider,
		codes,
		sheet,
		assistant,
		time.Duration(cfg.SubmitDelayMS)*time.Millisecond,
	)

	catalog := core.DefaultCatalog()
	handler := webAdapter.NewHandler(svc, catalog, cfg.AllowedOrigins, cfg.JWTSecret)

	log.Printf("server starting on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
