package configs

import (
	"log"

	"github.com/Deepanghsh/Smart-Ward-Admin/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(cfg *Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		dialector = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Issue{}, &entity.IssueComment{},
		&entity.Announcement{},
		&entity.LostFoundItem{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
