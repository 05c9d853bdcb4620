// Command seeder writes the built-in seller identity and product catalog
// into the key-value store so operators can inspect and edit them in place.
// Flags select which defaults to write; existing overrides are preserved
// unless -force is passed.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redis "github.com/redis/go-redis/v9"

	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/catalog"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/counter"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/kv"
	"github.com/aspace3d-alt/Alimentador-jeringuilla/internal/seller"
)

func main() {
	seedSeller := flag.Bool("seller", true, "seed the seller identity")
	seedCatalog := flag.Bool("catalog", true, "seed the product catalog")
	seedCounter := flag.Bool("counter", true, "seed the quote counter")
	force := flag.Bool("force", false, "overwrite existing values")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Fatal("REDIS_URL is not set")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to ping Redis: %v", err)
	}
	store := kv.Store{Client: client}

	if *seedSeller {
		writeDefault(ctx, store, kv.KeySellerConfig, seller.Default(), *force)
	}
	if *seedCatalog {
		writeDefault(ctx, store, kv.KeyProductConfig, catalog.DefaultProducts(), *force)
	}
	if *seedCounter {
		seq := counter.Redis{Client: client, Key: kv.KeyQuoteCounter}
		if *force {
			if err := client.Del(ctx, kv.KeyQuoteCounter).Err(); err != nil {
				log.Fatalf("Failed to reset counter: %v", err)
			}
		}
		if err := seq.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed counter: %v", err)
		}
		log.Printf("Seeded %s", kv.KeyQuoteCounter)
	}

	log.Println("Seeding completed successfully!")
}

func writeDefault(ctx context.Context, store kv.Store, key string, value any, force bool) {
	if !force {
		var existing any
		err := store.GetJSON(ctx, key, &existing)
		if err == nil {
			log.Printf("Skipping %s: value already present (use -force to overwrite)", key)
			return
		}
	}
	if err := store.PutJSON(ctx, key, value); err != nil {
		log.Fatalf("Failed to write %s: %v", key, err)
	}
	log.Printf("Seeded %s", key)
}
