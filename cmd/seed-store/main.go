// Command seed-store resets the local key-value store to the built-in seed
// data: the three demo vendors, and optionally an empty buyer list. Useful
// for returning a demo machine to a known state.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"

	"binder/internal/config"
	"binder/internal/core"
	"binder/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	clearBuyers := flag.Bool("clear-buyers", false, "also reset the buyer code list to empty")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load("binder.yml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	kv, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer kv.Close()

	ctx := context.Background()

	seed, err := json.Marshal(core.SeedVendors())
	if err != nil {
		log.Fatalf("encoding seed vendors: %v", err)
	}
	if err := kv.Set(ctx, store.KeyVendorCodes, string(seed)); err != nil {
		log.Fatalf("writing %s: %v", store.KeyVendorCodes, err)
	}
	log.Printf("wrote %d seed vendors to %s", len(core.SeedVendors()), cfg.StorePath)

	if *clearBuyers {
		if err := kv.Set(ctx, store.KeyBuyerCodes, "[]"); err != nil {
			log.Fatalf("writing %s: %v", store.KeyBuyerCodes, err)
		}
		log.Println("buyer code list cleared")
	}
}
