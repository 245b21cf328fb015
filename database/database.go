package database

import (
	"fmt"
	"log"
	"strings"

	config "github.com/kmuriithi/skillswap/configs"
	"github.com/kmuriithi/skillswap/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Feedback{},
		&models.Badge{},
		&models.Certificate{},
		&models.Friendship{},
		&models.Report{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmins provisions the operator accounts from ADMIN_EMAILS (comma
// separated) and ADMIN_PASSWORD. The allowlist lives in configuration only;
// no admin identity is baked into business logic.
func SeedAdmins() {
	emails := strings.Split(config.Config("ADMIN_EMAILS"), ",")
	password := config.Config("ADMIN_PASSWORD")

	if password == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set, skipping admin seeding.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		var count int64
		if err := DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			log.Fatalf("🔥 Failed to check for admin user: %v", err)
		}
		if count > 0 {
			continue
		}

		admin := models.User{
			FullName: "Platform Admin",
			Email:    email,
			Password: string(hashedPassword),
			Role:     "admin",
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Fatalf("🔥 Failed to seed admin user %s: %v", email, err)
		}
		log.Printf("✅ Admin user %s seeded successfully", email)
	}
}
