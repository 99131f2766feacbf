package repository

import (
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, or gorm.ErrRecordNotFound when
// nothing has been saved yet.
func (r *SettingsRepository) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	if err := r.db.First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes the whole document into the single slot.
func (r *SettingsRepository) Upsert(settings *models.SiteSettings) (*models.SiteSettings, error) {
	var existing models.SiteSettings
	err := r.db.First(&existing).Error
	switch {
	case err == nil:
		settings.ID = existing.ID
	case err == gorm.ErrRecordNotFound:
		settings.ID = 0
	default:
		return nil, err
	}

	if err := r.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpsertSection replaces one top-level section, keeping the rest of the
// stored document (or the defaults, on first write) intact.
func (r *SettingsRepository) UpsertSection(apply func(*models.SiteSettings)) (*models.SiteSettings, error) {
	settings, err := r.Get()
	if err == gorm.ErrRecordNotFound {
		settings = models.DefaultSiteSettings()
	} else if err != nil {
		return nil, err
	}

	apply(settings)
	if err := r.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
