package main

import (
	"context"
	"log"
	"time"

	"github.com/sannty/salescrm/config"
	"github.com/sannty/salescrm/pkg/database"
	"github.com/sannty/salescrm/pkg/testdata"
)

// Seeds the database with demo data for local development.
func main() {
	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	orgID, err := testdata.NewGenerator(db.Ent).Seed(ctx)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Demo data seeded (organization %d, password: demo-password)", orgID)
}
