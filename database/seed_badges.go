package database

import (
	"fmt"
	"log"

	"github.com/kmuriithi/skillswap/models"
)

// SeedBadgeTiers makes sure every tier of the catalog has a row. Existing
// rows are left untouched so operator-added tiers survive restarts.
func SeedBadgeTiers() {
	for _, tier := range models.BadgeTiers {
		var count int64
		if err := DB.Model(&models.Badge{}).Where("name = ?", tier.Name).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check for badge %s: %v", tier.Name, err)
		}
		if count > 0 {
			continue
		}

		badge := models.Badge{
			Name:             tier.Name,
			Rank:             tier.Rank,
			SessionsRequired: tier.Sessions,
			CreditsRequired:  tier.Credits,
			Description: fmt.Sprintf("Awarded after teaching %d sessions and earning %.0f credits.",
				tier.Sessions, tier.Credits),
		}
		if err := DB.Create(&badge).Error; err != nil {
			log.Fatalf("🔥 Failed to seed badge %s: %v", tier.Name, err)
		}
	}
	log.Println("✅ Badge catalog seeded successfully")
}
