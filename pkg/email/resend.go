package email

import (
	"bytes"
	"html/template"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type Service struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewService(apiKey, from, fromName string, logger *zap.Logger) *Service {
	return &Service{
		client:       resend.NewClient(apiKey),
		from:         from,
		fromName:     fromName,
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

// SendOTPEmail delivers the 6-digit verification code.
func (s *Service) SendOTPEmail(to, code, username string) error {
	html, err := s.parseTemplate("verify-otp.html", map[string]interface{}{
		"Username": username,
		"Code":     code,
		"Year":     time.Now().Year(),
	})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Kode Verifikasi Email - Cafe Loreomah",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send OTP email", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("sent OTP email", zap.String("to", to), zap.String("email_id", resp.Id))
	return nil
}

// SendReservationConfirmedEmail tells the owner their reservation was
// approved.
func (s *Service) SendReservationConfirmedEmail(to string, reservation *models.Reservation) error {
	html, err := s.parseTemplate("reservation-confirmed.html", map[string]interface{}{
		"Name":   reservation.Name,
		"Date":   reservation.Date,
		"Guests": reservation.Guests,
		"Year":   time.Now().Year(),
	})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Reservasi Anda Dikonfirmasi - Cafe Loreomah",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send reservation confirmation email",
			zap.String("to", to), zap.String("reservation_id", reservation.ID), zap.Error(err))
		return err
	}

	s.logger.Info("sent reservation confirmation email",
		zap.String("to", to), zap.String("email_id", resp.Id))
	return nil
}

func (s *Service) parseTemplate(templateName string, data interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, templateName))
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}
