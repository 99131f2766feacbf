package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
)

func register(t *testing.T, svc *service.AuthService, email string) {
	t.Helper()
	_, err := svc.RegisterUser(models.RegisterRequest{
		Email:       email,
		Password:    "secret123",
		PhoneNumber: "081234567890",
	})
	require.NoError(t, err)
}

func TestRegisterSendsOTP(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")

	require.Len(t, mail.otps, 1)
	require.Equal(t, "guest@example.com", mail.otps[0].To)
	require.Len(t, mail.otps[0].Code, 6)

	user := stored(t, db, "guest@example.com")
	require.False(t, user.EmailVerified)
	require.Equal(t, mail.otps[0].Code, user.OTPCode)
	require.NotNil(t, user.OTPExpiresAt)
}

func TestRegisterVerifiedEmailRejected(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")
	require.NoError(t, svc.VerifyOTP("guest@example.com", mail.otps[0].Code))

	_, err := svc.RegisterUser(models.RegisterRequest{Email: "guest@example.com", Password: "other"})
	require.ErrorIs(t, err, service.ErrAlreadyRegistered)
}

func TestRegisterUnverifiedEmailResendsCode(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")
	first := mail.otps[0].Code

	register(t, svc, "guest@example.com")
	require.Len(t, mail.otps, 2)

	// only the latest code verifies
	user := stored(t, db, "guest@example.com")
	require.Equal(t, mail.otps[1].Code, user.OTPCode)
	if first != mail.otps[1].Code {
		require.ErrorIs(t, svc.VerifyOTP("guest@example.com", first), service.ErrOTPMismatch)
	}
	require.NoError(t, svc.VerifyOTP("guest@example.com", mail.otps[1].Code))
}

func TestRegisterMailFailureDoesNotBlock(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{fail: true}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")

	user := stored(t, db, "guest@example.com")
	require.NotEmpty(t, user.OTPCode)
}

func TestVerifyOTP(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")
	code := mail.otps[0].Code

	require.ErrorIs(t, svc.VerifyOTP("nobody@example.com", code), service.ErrUserNotFound)
	require.ErrorIs(t, svc.VerifyOTP("guest@example.com", "000000"), service.ErrOTPMismatch)

	require.NoError(t, svc.VerifyOTP("guest@example.com", code))
	user := stored(t, db, "guest@example.com")
	require.True(t, user.EmailVerified)
	require.Empty(t, user.OTPCode)
	require.Nil(t, user.OTPExpiresAt)

	// single use
	require.ErrorIs(t, svc.VerifyOTP("guest@example.com", code), service.ErrAlreadyVerified)
}

func TestVerifyOTPExpired(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")
	code := mail.otps[0].Code

	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "guest@example.com").
		Update("otp_expires_at", past).Error)

	require.ErrorIs(t, svc.VerifyOTP("guest@example.com", code), service.ErrOTPExpired)
}

func TestResendOTP(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	require.ErrorIs(t, svc.ResendOTP("nobody@example.com"), service.ErrUserNotFound)

	register(t, svc, "guest@example.com")
	require.NoError(t, svc.ResendOTP("guest@example.com"))
	require.Len(t, mail.otps, 2)

	user := stored(t, db, "guest@example.com")
	require.Equal(t, mail.otps[1].Code, user.OTPCode)

	require.NoError(t, svc.VerifyOTP("guest@example.com", user.OTPCode))
	require.ErrorIs(t, svc.ResendOTP("guest@example.com"), service.ErrAlreadyVerified)
}

func TestLoginUserRequiresVerifiedEmail(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")

	_, err := svc.LoginUser("guest@example.com", "secret123")
	require.ErrorIs(t, err, service.ErrEmailNotVerified)

	require.NoError(t, svc.VerifyOTP("guest@example.com", mail.otps[0].Code))

	resp, err := svc.LoginUser("guest@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "bearer", resp.TokenType)
	require.Equal(t, "guest@example.com", resp.User.Email)
	require.Equal(t, models.RoleUser, resp.User.Role)

	claims, err := newTokenManager().Validate(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "guest@example.com", claims.Subject)
	require.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")

	_, err := svc.LoginUser("guest@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.LoginUser("nobody@example.com", "secret123")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginAdminRejectsRegularUser(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newAuthService(t, db, mail)

	register(t, svc, "guest@example.com")
	require.NoError(t, svc.VerifyOTP("guest@example.com", mail.otps[0].Code))

	_, err := svc.LoginAdmin("guest@example.com", "secret123")
	require.ErrorIs(t, err, service.ErrNotAdmin)
}

func TestRegisterAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, &emailRecorder{})

	_, err := svc.RegisterAdmin(models.RegisterRequest{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)

	user := stored(t, db, "admin@example.com")
	require.Equal(t, models.RoleAdmin, user.Role)
	require.True(t, user.EmailVerified)

	resp, err := svc.LoginAdmin("admin@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, resp.User.Role)

	_, err = svc.RegisterAdmin(models.RegisterRequest{Email: "admin@example.com", Password: "x"})
	require.ErrorIs(t, err, service.ErrAlreadyRegistered)
}

func TestUniversalLoginSkipsVerificationCheck(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, &emailRecorder{})

	register(t, svc, "guest@example.com")

	// still unverified, but the role-agnostic login accepts it
	resp, err := svc.Login("guest@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "guest@example.com", resp.User.Email)
}
