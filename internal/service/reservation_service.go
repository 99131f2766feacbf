package service

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/internal/statemachine"
	"github.com/zahrirmdn/loreomah/pkg/whatsapp"
)

type ReservationService struct {
	reservationRepo *repository.ReservationRepository
	email           EmailSender
	wa              WhatsAppSender
	logger          *zap.Logger
}

func NewReservationService(reservationRepo *repository.ReservationRepository, email EmailSender, wa WhatsAppSender, logger *zap.Logger) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		email:           email,
		wa:              wa,
		logger:          logger,
	}
}

// Create opens a pending reservation owned by the authenticated caller.
// The owner-read flag starts true: the creator already knows about it.
func (s *ReservationService) Create(req models.ReservationRequest, userEmail string) (*models.Reservation, error) {
	reservation := &models.Reservation{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Guests:    req.Guests,
		Date:      req.Date,
		Status:    models.StatusPending,
		UserEmail: &userEmail,
		IsRead:    true,
	}
	return s.reservationRepo.Create(reservation)
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	return s.reservationRepo.GetAll()
}

func (s *ReservationService) ListMine(email string, page, size int, status models.ReservationStatus) (*models.ReservationPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	items, total, err := s.reservationRepo.GetByUserEmail(email, page, size, status)
	if err != nil {
		return nil, err
	}
	return &models.ReservationPage{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// Cancel lets the owner withdraw a pending reservation. Cancelling an
// already cancelled one is a no-op.
func (s *ReservationService) Cancel(id, userEmail string) (*models.Reservation, error) {
	reservation, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if reservation.UserEmail == nil || *reservation.UserEmail != userEmail {
		return nil, ErrNotYourReservation
	}
	if reservation.Status == models.StatusCancelled {
		return reservation, nil
	}
	if err := statemachine.CanTransition(reservation.Status, models.StatusCancelled, statemachine.ActorOwner); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.UpdateFields(id, map[string]interface{}{"status": models.StatusCancelled}); err != nil {
		return nil, err
	}
	reservation.Status = models.StatusCancelled
	return reservation, nil
}

// Confirm moves a pending reservation to confirmed, resets the owner-read
// flag so the update surfaces, and notifies the guest. Notification
// failures are logged and never fail the request.
func (s *ReservationService) Confirm(id string) (*models.Reservation, error) {
	reservation, err := s.transition(id, models.StatusConfirmed)
	if err != nil {
		return nil, err
	}

	if reservation.UserEmail != nil {
		if err := s.email.SendReservationConfirmedEmail(*reservation.UserEmail, reservation); err != nil {
			s.logger.Warn("failed to send confirmation email",
				zap.String("reservation_id", id), zap.Error(err))
		}
	}
	if reservation.Phone != "" {
		message := whatsapp.FormatReservationApproved(reservation.Name, reservation.Date, reservation.Guests)
		if err := s.wa.SendMessage(reservation.Phone, message); err != nil {
			s.logger.Warn("failed to send confirmation WhatsApp message",
				zap.String("reservation_id", id), zap.Error(err))
		}
	}
	return reservation, nil
}

// Decline moves a pending reservation to declined and resets the
// owner-read flag; the guest gets a best-effort WhatsApp notice.
func (s *ReservationService) Decline(id string) (*models.Reservation, error) {
	reservation, err := s.transition(id, models.StatusDeclined)
	if err != nil {
		return nil, err
	}

	if reservation.Phone != "" {
		message := whatsapp.FormatReservationDeclined(reservation.Name, reservation.Date)
		if err := s.wa.SendMessage(reservation.Phone, message); err != nil {
			s.logger.Warn("failed to send decline WhatsApp message",
				zap.String("reservation_id", id), zap.Error(err))
		}
	}
	return reservation, nil
}

// transition applies an admin status change; repeating one that already
// happened is a no-op.
func (s *ReservationService) transition(id string, to models.ReservationStatus) (*models.Reservation, error) {
	reservation, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status == to {
		return reservation, nil
	}
	if err := statemachine.CanTransition(reservation.Status, to, statemachine.ActorAdmin); err != nil {
		return nil, err
	}

	err = s.reservationRepo.UpdateFields(id, map[string]interface{}{
		"status":  to,
		"is_read": false,
	})
	if err != nil {
		return nil, err
	}
	reservation.Status = to
	reservation.IsRead = false
	return reservation, nil
}

func (s *ReservationService) MarkRead(id, userEmail string) (*models.Reservation, error) {
	reservation, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if reservation.UserEmail == nil || *reservation.UserEmail != userEmail {
		return nil, ErrNotYourReservation
	}

	if err := s.reservationRepo.UpdateFields(id, map[string]interface{}{"is_read": true}); err != nil {
		return nil, err
	}
	reservation.IsRead = true
	return reservation, nil
}

func (s *ReservationService) MarkAllRead(userEmail string) (int64, error) {
	return s.reservationRepo.MarkAllRead(userEmail)
}

func (s *ReservationService) MarkAllReadByAdmin() (int64, error) {
	return s.reservationRepo.MarkAllReadByAdmin()
}

// Update applies an admin patch to the reservation's contact fields.
func (s *ReservationService) Update(id string, req models.UpdateReservationRequest) (*models.Reservation, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Guests != nil {
		fields["guests"] = *req.Guests
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.reservationRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return s.get(id)
}

func (s *ReservationService) Delete(id string) error {
	err := s.reservationRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReservationNotFound
	}
	return err
}

func (s *ReservationService) get(id string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}
