package main

import (
	"log"

	"churchhub-be/internal/config"
	"churchhub-be/internal/model"
	"churchhub-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	err = db.AutoMigrate(
		&model.Profile{},
		&model.Church{},
		&model.LegalDisagreement{},
		&model.NotificationType{},
		&model.Notification{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
