package main

import (
	"context"
	"log"

	"chitty-gateway/internal/bootstrap"
	"chitty-gateway/internal/config"
	"chitty-gateway/pkg/database"

	"gorm.io/gorm"
)

type seedRecord struct {
	domain string
	data   map[string]interface{}
}

// Demo records for each collection. Verification codes are hashed on create.
var seedRecords = []seedRecord{
	{"cases", map[string]interface{}{"title": "Estate of Alvarez", "jurisdiction": "Cook County, IL"}},
	{"cases", map[string]interface{}{"title": "Rivera v. Northline Freight", "jurisdiction": "N.D. Ill."}},
	{"assets", map[string]interface{}{"name": "Delivery Van 07", "assetType": "vehicle"}},
	{"finance", map[string]interface{}{"accountName": "Operating Account", "verificationCode": "demo-1234"}},
	{"property", map[string]interface{}{"address": "1400 W Lake St, Chicago, IL", "owner": "Lakeview Holdings"}},
}

func main() {
	cfg := config.Load()

	if cfg.Storage.RedisURL == "" {
		log.Fatal("Error: REDIS_URL is not set; seeded records would vanish with this process")
	}

	var db *gorm.DB
	if cfg.Database.Connection != "" {
		var err error
		db, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatal("Error: Failed to connect to database:", err)
		}
	}

	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()

	log.Println("Seeding demo records...")

	ctx := context.Background()
	for _, r := range seedRecords {
		record, err := container.RecordService.Create(ctx, r.domain, r.data)
		if err != nil {
			log.Printf("Error creating %s record: %v", r.domain, err)
			continue
		}
		log.Printf("Created %s record: %s", r.domain, record.Id)
	}

	log.Println("Record seeding completed!")
}
