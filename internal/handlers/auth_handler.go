package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/edificio-gestion/backend/internal/config"
	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/middleware"
	"github.com/edificio-gestion/backend/internal/oauth/google"
	"github.com/edificio-gestion/backend/internal/services"
	"github.com/edificio-gestion/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	authService *services.AuthService
	validator   *validation.Validator
	google      *google.Client
	cfg         *config.Config
}

// NewAuthHandler wires the auth endpoints. googleClient may be nil when
// OAuth is not configured; the Google routes then answer 503.
func NewAuthHandler(authService *services.AuthService, validator *validation.Validator, googleClient *google.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		google:      googleClient,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrCITaken) || errors.Is(err, services.ErrEmailTaken) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("register failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondCreated(c, resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrInactiveAccount) {
			return respondError(c, fiber.StatusUnauthorized, err.Error())
		}
		slog.Error("login failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondOK(c, resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	access, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return respondError(c, fiber.StatusUnauthorized, err.Error())
		}
		slog.Error("token refresh failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondOK(c, dto.AccessTokenResponse{AccessToken: access})
}

// Me returns the authenticated account, already loaded by RequireAuth.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, fiber.StatusUnauthorized, "Usuario no válido o inactivo")
	}
	return respondOK(c, fiber.Map{"user": user})
}

// Verify confirms the access token resolves to an account.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, fiber.StatusUnauthorized, "Usuario no válido o inactivo")
	}
	return respondOK(c, fiber.Map{"user": user, "is_valid": true})
}

// Logout is informational: tokens are stateless, the client discards them.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return respondMessage(c, "Sesión cerrada exitosamente. El token debe ser eliminado del cliente.")
}

// GoogleLogin starts the consent redirect flow. The state parameter is
// echoed back through a short-lived cookie and checked in the callback.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	if h.google == nil {
		return respondError(c, fiber.StatusServiceUnavailable, "Autenticación con Google no configurada")
	}

	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(h.google.AuthCodeURL(state), fiber.StatusFound)
}

func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	if h.google == nil {
		return respondError(c, fiber.StatusServiceUnavailable, "Autenticación con Google no configurada")
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return respondError(c, fiber.StatusBadRequest, "Parámetro state inválido")
	}
	c.ClearCookie(oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return respondError(c, fiber.StatusBadRequest, "Código de autorización faltante")
	}

	identity, err := h.google.Exchange(c.Context(), code)
	if err != nil {
		slog.Error("google code exchange failed", "error", err)
		return respondError(c, fiber.StatusBadRequest, "No se pudo verificar la identidad de Google")
	}

	resp, err := h.authService.GoogleSignIn(identity)
	if err != nil {
		if errors.Is(err, services.ErrMissingEmail) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("google sign in failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	// Browser flow: hand the tokens back to the frontend callback page.
	redirect := fmt.Sprintf("%s/auth/callback?access_token=%s&refresh_token=%s&user=%s",
		h.cfg.FrontendURL,
		url.QueryEscape(resp.AccessToken),
		url.QueryEscape(resp.RefreshToken),
		url.QueryEscape(resp.User.CI),
	)
	return c.Redirect(redirect, fiber.StatusFound)
}

// GoogleToken authenticates with an id_token the client obtained from
// Google directly, skipping the redirect flow.
func (h *AuthHandler) GoogleToken(c *fiber.Ctx) error {
	if h.google == nil {
		return respondError(c, fiber.StatusServiceUnavailable, "Autenticación con Google no configurada")
	}

	var req dto.GoogleTokenRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	identity, err := h.google.VerifyIDToken(c.Context(), req.IDToken)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Token de Google inválido")
	}

	resp, err := h.authService.GoogleSignIn(identity)
	if err != nil {
		if errors.Is(err, services.ErrMissingEmail) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("google sign in failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondOK(c, resp)
}
