package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
)

type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the stored settings, or the compiled-in defaults before the
// first save.
func (s *SettingsService) Get() (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultSiteSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Update(req models.SiteSettingsRequest) (*models.SiteSettings, error) {
	return s.settingsRepo.Upsert(&models.SiteSettings{
		Contact: req.Contact,
		About:   req.About,
		Story:   req.Story,
	})
}

func (s *SettingsService) UpdateContact(contact models.ContactData) (*models.SiteSettings, error) {
	return s.settingsRepo.UpsertSection(func(settings *models.SiteSettings) {
		settings.Contact = contact
	})
}

func (s *SettingsService) UpdateAbout(about models.AboutData) (*models.SiteSettings, error) {
	return s.settingsRepo.UpsertSection(func(settings *models.SiteSettings) {
		settings.About = about
	})
}

func (s *SettingsService) UpdateStory(story models.StoryData) (*models.SiteSettings, error) {
	return s.settingsRepo.UpsertSection(func(settings *models.SiteSettings) {
		settings.Story = story
	})
}
