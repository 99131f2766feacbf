package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zahrirmdn/loreomah/internal/handler"
	"github.com/zahrirmdn/loreomah/internal/middleware"
	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/repository"
	"github.com/zahrirmdn/loreomah/internal/service"
	jwtPkg "github.com/zahrirmdn/loreomah/pkg/jwt"
	"github.com/zahrirmdn/loreomah/pkg/utils"
)

type mailRecorder struct {
	codes     map[string]string
	confirmed []string
}

func (r *mailRecorder) SendOTPEmail(to, code, username string) error {
	if r.codes == nil {
		r.codes = map[string]string{}
	}
	r.codes[to] = code
	return nil
}

func (r *mailRecorder) SendReservationConfirmedEmail(to string, reservation *models.Reservation) error {
	r.confirmed = append(r.confirmed, to)
	return nil
}

type waStub struct{ fail bool }

func (s *waStub) SendMessage(phone, message string) error {
	if s.fail {
		return errors.New("bot offline")
	}
	return nil
}

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	mail *mailRecorder
	auth *service.AuthService
}

// newTestEnv wires the auth and reservation slices of the API against an
// in-memory database, mirroring the route layout of cmd/api.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Reservation{}))

	userRepo := repository.NewUserRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	mail := &mailRecorder{}
	tokens := jwtPkg.NewTokenManager("test-secret", "loreomah", time.Hour)

	authService := service.NewAuthService(userRepo, mail, tokens, zap.NewNop())
	reservationService := service.NewReservationService(reservationRepo, mail, &waStub{}, zap.NewNop())
	userService := service.NewUserService(userRepo, zap.NewNop())

	validator := utils.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator)
	reservationHandler := handler.NewReservationHandler(reservationService, validator)
	userHandler := handler.NewUserHandler(userService)
	m := middleware.NewAuthMiddleware(tokens, userRepo)

	app := fiber.New()

	auth := app.Group("/auth")
	auth.Post("/user/register", authHandler.RegisterUser)
	auth.Post("/admin/register", authHandler.RegisterAdmin)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/resend-otp", authHandler.ResendOTP)
	auth.Post("/user/login", authHandler.LoginUser)
	auth.Post("/admin/login", authHandler.LoginAdmin)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", m.Protected(), authHandler.Me)

	reservations := app.Group("/api/reservations")
	reservations.Get("/", reservationHandler.List)
	reservations.Post("/", m.Protected(), reservationHandler.Create)
	reservations.Get("/mine", m.Protected(), reservationHandler.ListMine)
	reservations.Put("/mark-all-read", m.Protected(), reservationHandler.MarkAllRead)
	reservations.Put("/admin/mark-all-read", m.Protected(), m.AdminOnly(), reservationHandler.MarkAllReadByAdmin)
	reservations.Put("/:id/cancel", m.Protected(), reservationHandler.Cancel)
	reservations.Put("/:id/confirm", m.Protected(), m.AdminOnly(), reservationHandler.Confirm)
	reservations.Put("/:id/decline", m.Protected(), m.AdminOnly(), reservationHandler.Decline)
	reservations.Put("/:id/mark-read", m.Protected(), reservationHandler.MarkRead)
	reservations.Put("/:id", m.Protected(), m.AdminOnly(), reservationHandler.Update)
	reservations.Delete("/:id", m.Protected(), m.AdminOnly(), reservationHandler.Delete)

	users := app.Group("/api/users")
	users.Get("/me", m.Protected(), userHandler.Me)
	users.Patch("/me", m.Protected(), userHandler.UpdateProfile)
	users.Post("/me/avatar/remove", m.Protected(), userHandler.RemoveAvatar)

	return &testEnv{app: app, db: db, mail: mail, auth: authService}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) doForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// registerAndVerify runs the full OTP round-trip and returns a login token.
func (e *testEnv) registerAndVerify(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.doJSON(t, http.MethodPost, "/auth/user/register", fiber.Map{
		"email":        email,
		"password":     password,
		"phone_number": "081234567890",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = e.doJSON(t, http.MethodPost, "/auth/verify-otp", fiber.Map{
		"email":    email,
		"otp_code": e.mail.codes[email],
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	return e.login(t, "/auth/user/login", email, password)
}

func (e *testEnv) registerAdmin(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.doJSON(t, http.MethodPost, "/auth/admin/register", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	return e.login(t, "/auth/admin/login", email, password)
}

func (e *testEnv) login(t *testing.T, path, email, password string) string {
	t.Helper()
	resp := e.doForm(t, path, url.Values{"username": {email}, "password": {password}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}
