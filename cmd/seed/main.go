package main

import (
	"log"
	"os"
	"time"

	"ai-compliance-be/internal/model"
	"ai-compliance-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds the built-in regulatory jurisdictions. Idempotent: existing
// names are skipped.
func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	jurisdictions := []model.Jurisdiction{
		{
			Id:             uuid.New(),
			Name:           "EU AI Act",
			RegulationType: "eu_ai_act",
			Description:    "European Union Artificial Intelligence Act (Regulation (EU) 2024/1689)",
			Region:         "European Union",
			CreatedAt:      time.Now(),
		},
		{
			Id:             uuid.New(),
			Name:           "ISO/IEC 42001",
			RegulationType: "iso_42001",
			Description:    "AI management system standard",
			Region:         "International",
			CreatedAt:      time.Now(),
		},
		{
			Id:             uuid.New(),
			Name:           "US AI Governance",
			RegulationType: "us_ai_governance",
			Description:    "US federal AI governance guidance (NIST AI RMF, EO 14110)",
			Region:         "United States",
			CreatedAt:      time.Now(),
		},
	}

	for _, j := range jurisdictions {
		var count int64
		db.Model(&model.Jurisdiction{}).Where("name = ?", j.Name).Count(&count)
		if count > 0 {
			log.Printf("Skip: jurisdiction %q already exists", j.Name)
			continue
		}
		if err := db.Create(&j).Error; err != nil {
			log.Fatalf("Error: Failed to seed jurisdiction %q: %v", j.Name, err)
		}
		log.Printf("Seeded jurisdiction %q", j.Name)
	}

	log.Println("✅ Success: Jurisdiction seeding completed.")
}
