package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

func NewDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.GalleryItem{},
		&models.Slider{},
		&models.Message{},
		&models.SiteSettings{},
		&models.StatusCheck{},
	)
}
