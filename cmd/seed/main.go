package main

import (
	"log"
	"os"

	"codementor-be/internal/model"
	"codementor-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
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

	color.Cyan("Seeding CodeMentor database")

	seedAchievements(db)
	seedAdminUser(db)

	color.Green("Done.")
}

func seedAchievements(db *gorm.DB) {
	color.Yellow("\n[1] Achievements")

	achievements := []model.Achievement{
		{
			Name:             "First Steps",
			Description:      "Fix your first bug in a bug hunt",
			Icon:             "🐛",
			Rarity:           "common",
			XpReward:         25,
			RequirementType:  "bugs_fixed",
			RequirementValue: 1,
		},
		{
			Name:             "Bug Exterminator",
			Description:      "Fix 50 bugs across bug hunts",
			Icon:             "🔨",
			Rarity:           "epic",
			XpReward:         200,
			RequirementType:  "bugs_fixed",
			RequirementValue: 50,
		},
		{
			Name:             "Champion",
			Description:      "Win 10 coding games",
			Icon:             "🏆",
			Rarity:           "rare",
			XpReward:         100,
			RequirementType:  "games_won",
			RequirementValue: 10,
		},
		{
			Name:             "Rising Star",
			Description:      "Reach level 5",
			Icon:             "⭐",
			Rarity:           "rare",
			XpReward:         150,
			RequirementType:  "level",
			RequirementValue: 5,
		},
		{
			Name:             "Streak Keeper",
			Description:      "Stay active for 7 days in a row",
			Icon:             "🔥",
			Rarity:           "legendary",
			XpReward:         300,
			RequirementType:  "streak",
			RequirementValue: 7,
		},
	}

	for _, a := range achievements {
		var existing model.Achievement
		err := db.Where("name = ?", a.Name).First(&existing).Error
		if err == nil {
			color.Yellow("  skip %s (exists)", a.Name)
			continue
		}
		if err := db.Create(&a).Error; err != nil {
			color.Red("  failed %s: %v", a.Name, err)
			continue
		}
		color.Green("  created %s", a.Name)
	}
}

func seedAdminUser(db *gorm.DB) {
	color.Yellow("\n[2] Admin user")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@codementor.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("  skip %s (exists)", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("  failed to hash password: %v", err)
		return
	}

	admin := model.User{
		Name:            "Admin",
		Email:           email,
		PasswordHash:    string(hash),
		IsEmailVerified: true,
		IsAdmin:         true,
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("  failed %s: %v", email, err)
		return
	}

	profile := model.UserProfile{
		UserId: admin.Id,
		Level:  1,
	}
	if err := db.Create(&profile).Error; err != nil {
		color.Red("  failed profile for %s: %v", email, err)
		return
	}

	color.Green("  created %s", email)
}
