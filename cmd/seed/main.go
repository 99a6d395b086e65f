package main

import (
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"stockroom/internal/config"
	"stockroom/internal/domain"
	"stockroom/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	repo := repository.NewInventoryRepository(cfg.CacheDir)
	if err := repo.EnsureInitialized(); err != nil {
		log.Fatalf("failed to initialize inventory storage: %v", err)
	}

	log.Println("Starting seed process...")

	items := sampleItems()
	if err := repo.SaveAll(items); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}

	log.Printf("Seed process completed, %d items written", len(items))
}

func sampleItems() []domain.Item {
	samples := []struct {
		name        string
		description string
	}{
		{"Cordless Drill", "18V with two batteries"},
		{"Ladder", "3m aluminium step ladder"},
		{"Socket Set", ""},
		{"Angle Grinder", "125mm disc, needs new guard"},
		{"Shop Vacuum", "wet/dry, 20L drum"},
	}

	base := time.Now().UnixMilli()
	items := make([]domain.Item, len(samples))
	for i, s := range samples {
		items[i] = domain.Item{
			ID:          strconv.FormatInt(base+int64(i), 10),
			Name:        s.name,
			Description: s.description,
		}
	}
	return items
}
