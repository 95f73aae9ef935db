package main

import (
	"log"

	"churchhub-be/internal/config"
	"churchhub-be/internal/model"
	"churchhub-be/pkg/database"
	"churchhub-be/pkg/events"

	"github.com/fatih/color"
)

// Seeds the notification-type registry consumed by the notification service.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	types := []model.NotificationType{
		{
			Code:        events.LegalDisagreementCreated,
			DisplayName: "Disagreement recorded",
			Template:    "Your disagreement was recorded. Your account is scheduled for deletion unless you reverse it before the deadline.",
			Priority:    "HIGH",
		},
		{
			Code:        events.LegalDeletionWarningSent,
			DisplayName: "Deletion approaching",
			Template:    "A warning email was sent: the scheduled deletion deadline is close.",
			Priority:    "HIGH",
		},
		{
			Code:        events.LegalDisagreementReversed,
			DisplayName: "Disagreement withdrawn",
			Template:    "Your disagreement was withdrawn. No deletion will take place.",
			Priority:    "MEDIUM",
		},
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, t := range types {
		var existing model.NotificationType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err == nil {
			log.Printf("%s notification type %s already present", yellow("SKIP"), t.Code)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			log.Fatalf("Failed to seed notification type %s: %v", t.Code, err)
		}
		log.Printf("%s notification type %s", green("SEEDED"), t.Code)
	}

	log.Println(green("✅ Seed complete"))
}
