package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edificio-gestion/backend/internal/config"
	"github.com/edificio-gestion/backend/internal/models"
	"github.com/edificio-gestion/backend/internal/services"
	"github.com/edificio-gestion/backend/internal/token"
	"github.com/edificio-gestion/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	tokens := token.NewManager("test-secret", time.Hour, 30*24*time.Hour)
	h := NewAuthHandler(
		services.NewAuthService(db, tokens),
		validation.New(),
		nil,
		&config.Config{},
	)

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/refresh", h.Refresh)
	app.Get("/api/auth/google/login", h.GoogleLogin)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope %q: %v", raw, err)
	}
	return resp, env
}

func registerPayload() map[string]interface{} {
	return map[string]interface{}{
		"ci":               "12345678",
		"nombres":          "Juan Carlos",
		"apellido_paterno": "Pérez",
		"fecha_nacimiento": "1990-05-15",
		"sexo":             "M",
		"correo":           "juan@example.com",
		"password":         "password123",
		"password_confirm": "password123",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	app := newAuthApp(t)

	resp, env := doJSON(t, app, "POST", "/api/auth/register", registerPayload())
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (message %q)", resp.StatusCode, env.Message)
	}
	if !env.Success {
		t.Error("success = false")
	}

	var data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.AccessToken == "" || data.RefreshToken == "" {
		t.Error("expected a token pair in the response data")
	}
}

func TestRegisterEndpointValidation(t *testing.T) {
	app := newAuthApp(t)

	payload := registerPayload()
	payload["password_confirm"] = "different123"
	resp, env := doJSON(t, app, "POST", "/api/auth/register", payload)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if env.Success {
		t.Error("success = true on validation failure")
	}
	if len(env.Errors["password_confirm"]) == 0 {
		t.Errorf("expected errors.password_confirm, got %v", env.Errors)
	}
}

func TestRegisterEndpointConflict(t *testing.T) {
	app := newAuthApp(t)

	if resp, _ := doJSON(t, app, "POST", "/api/auth/register", registerPayload()); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first register status = %d", resp.StatusCode)
	}
	resp, env := doJSON(t, app, "POST", "/api/auth/register", registerPayload())
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Success || env.Message == "" {
		t.Errorf("expected failure envelope with message, got %+v", env)
	}
}

func TestLoginEndpoint(t *testing.T) {
	app := newAuthApp(t)
	if resp, _ := doJSON(t, app, "POST", "/api/auth/register", registerPayload()); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}

	resp, env := doJSON(t, app, "POST", "/api/auth/login", map[string]interface{}{
		"correo":   "juan@example.com",
		"password": "password123",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (message %q)", resp.StatusCode, env.Message)
	}

	resp, env = doJSON(t, app, "POST", "/api/auth/login", map[string]interface{}{
		"correo":   "juan@example.com",
		"password": "wrongpass1",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if env.Success {
		t.Error("success = true on bad credentials")
	}
}

func TestRefreshEndpointRejectsGarbage(t *testing.T) {
	app := newAuthApp(t)
	resp, _ := doJSON(t, app, "POST", "/api/auth/refresh", map[string]interface{}{
		"refresh_token": "not-a-token",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGoogleLoginUnconfigured(t *testing.T) {
	app := newAuthApp(t)
	req := httptest.NewRequest("GET", "/api/auth/google/login", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}
