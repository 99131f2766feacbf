package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
)

type StatusService struct {
	statusRepo *repository.StatusCheckRepository
}

func NewStatusService(statusRepo *repository.StatusCheckRepository) *StatusService {
	return &StatusService{statusRepo: statusRepo}
}

func (s *StatusService) Create(clientName string) (*models.StatusCheck, error) {
	return s.statusRepo.Create(&models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	})
}

func (s *StatusService) List() ([]models.StatusCheck, error) {
	return s.statusRepo.GetAll()
}
