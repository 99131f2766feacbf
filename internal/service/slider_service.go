package service

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/pkg/storage"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type SliderService struct {
	sliderRepo *repository.SliderRepository
	storage    storage.StorageService
	logger     *zap.Logger
}

func NewSliderService(sliderRepo *repository.SliderRepository, store storage.StorageService, logger *zap.Logger) *SliderService {
	return &SliderService{
		sliderRepo: sliderRepo,
		storage:    store,
		logger:     logger,
	}
}

func (s *SliderService) GetAll() ([]models.Slider, error) {
	sliders, err := s.sliderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range sliders {
		sliders[i].FillImage()
	}
	return sliders, nil
}

func (s *SliderService) GetByID(id string) (*models.Slider, error) {
	slider, err := s.sliderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSliderNotFound
		}
		return nil, err
	}
	slider.FillImage()
	return slider, nil
}

func (s *SliderService) Create(title, description, filename string, file io.Reader) (*models.Slider, error) {
	slider := &models.Slider{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}

	if file != nil {
		key := "sliders/" + utils.RandomFileName(filename)
		if err := s.storage.Upload(key, file); err != nil {
			return nil, err
		}
		slider.ImageURL = s.storage.URL(key)
	}

	created, err := s.sliderRepo.Create(slider)
	if err != nil {
		return nil, err
	}
	created.FillImage()
	return created, nil
}

// Update replaces title and description; a new image replaces and removes
// the previously stored file.
func (s *SliderService) Update(id, title, description, filename string, file io.Reader) (*models.Slider, error) {
	slider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if file != nil {
		if slider.ImageURL != "" {
			if err := s.storage.Delete(s.storage.Key(slider.ImageURL)); err != nil {
				s.logger.Warn("failed to delete old slider image", zap.String("id", id), zap.Error(err))
			}
		}
		key := "sliders/" + utils.RandomFileName(filename)
		if err := s.storage.Upload(key, file); err != nil {
			return nil, err
		}
		slider.ImageURL = s.storage.URL(key)
	}

	slider.Title = title
	slider.Description = description

	if err := s.sliderRepo.Update(slider); err != nil {
		return nil, err
	}
	slider.FillImage()
	return slider, nil
}

func (s *SliderService) Delete(id string) error {
	slider, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if slider.ImageURL != "" {
		if err := s.storage.Delete(s.storage.Key(slider.ImageURL)); err != nil {
			s.logger.Warn("failed to delete slider image", zap.String("id", id), zap.Error(err))
		}
	}
	return s.sliderRepo.Delete(id)
}
