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

type GalleryService struct {
	galleryRepo *repository.GalleryRepository
	storage     storage.StorageService
	logger      *zap.Logger
}

func NewGalleryService(galleryRepo *repository.GalleryRepository, store storage.StorageService, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		storage:     store,
		logger:      logger,
	}
}

func (s *GalleryService) GetAll() ([]models.GalleryItem, error) {
	return s.galleryRepo.GetAll()
}

func (s *GalleryService) GetByID(id string) (*models.GalleryItem, error) {
	item, err := s.galleryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Create(title, description, filename string, file io.Reader) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}

	if file != nil {
		key := "gallery/" + utils.RandomFileName(filename)
		if err := s.storage.Upload(key, file); err != nil {
			return nil, err
		}
		item.ImageURL = s.storage.URL(key)
	}

	return s.galleryRepo.Create(item)
}

func (s *GalleryService) Update(id string, title, description *string, filename string, file io.Reader) (*models.GalleryItem, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if file != nil {
		key := "gallery/" + utils.RandomFileName(filename)
		if err := s.storage.Upload(key, file); err != nil {
			return nil, err
		}
		item.ImageURL = s.storage.URL(key)
	}

	if title != nil {
		item.Title = *title
	}
	if description != nil {
		item.Description = *description
	}

	if err := s.galleryRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Delete(id string) error {
	item, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		if err := s.storage.Delete(s.storage.Key(item.ImageURL)); err != nil {
			s.logger.Warn("failed to delete gallery image", zap.String("id", id), zap.Error(err))
		}
	}
	return s.galleryRepo.Delete(id)
}
