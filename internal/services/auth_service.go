package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/models"
	"github.com/edificio-gestion/backend/internal/oauth/google"
	"github.com/edificio-gestion/backend/internal/token"
	"github.com/edificio-gestion/backend/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrCITaken            = errors.New("ya existe un usuario registrado con este CI")
	ErrEmailTaken         = errors.New("ya existe un usuario registrado con este correo electrónico")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveAccount    = errors.New("cuenta de usuario inactiva")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrMissingEmail       = errors.New("el proveedor no entregó un correo electrónico")
)

// Accounts created from a provider assertion get a synthesized CI
// (no collision with self-registered identifiers is possible because
// self-registered CIs are strictly alphanumeric) and a sentinel birth
// date, matching the historical rows already in the personas table.
var providerSentinelBirthDate = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

type AuthService struct {
	db     *gorm.DB
	tokens *token.Manager
}

func NewAuthService(db *gorm.DB, tokens *token.Manager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a password-based account. The CI and email must both
// be unused; the error names which one conflicts.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var existing models.User
	err := s.db.Where("ci = ? OR correo = ?", req.CI, req.Correo).First(&existing).Error
	if err == nil {
		if existing.CI == req.CI {
			return nil, ErrCITaken
		}
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := token.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Validation already guaranteed the date parses.
	birthDate, err := validation.ParseDate(req.FechaNacimiento)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date: %w", err)
	}

	user := models.User{
		CI:              strings.TrimSpace(req.CI),
		Nombres:         req.Nombres,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		FechaNacimiento: birthDate,
		Sexo:            req.Sexo,
		Telefono:        normalizedPhone(req.Telefono),
		Correo:          req.Correo,
		Direccion:       req.Direccion,
		PasswordHash:    &hash,
		Activo:          true,
		Rol:             models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent insert can win the race after the check above;
		// the unique constraints turn that into a reported conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.classifyConflict(req.CI)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issuePair(&user)
}

func (s *AuthService) classifyConflict(ci string) (*dto.AuthResponse, error) {
	var byCI models.User
	if err := s.db.Where("ci = ?", ci).First(&byCI).Error; err == nil {
		return nil, ErrCITaken
	}
	return nil, ErrEmailTaken
}

// Login authenticates by email and password. Unknown email and wrong
// password fail identically; the inactive check happens only after the
// credentials matched, so account existence never leaks.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("correo = ?", req.Correo).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !token.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.Activo {
		return nil, ErrInactiveAccount
	}

	if err := s.touchLastAccess(&user); err != nil {
		return nil, err
	}

	return s.issuePair(&user)
}

// Refresh validates a refresh token and issues a new access token. The
// subject must still resolve to an active account.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	var user models.User
	if err := s.db.Where("ci = ?", claims.Subject).First(&user).Error; err != nil {
		return "", ErrInvalidToken
	}
	if !user.Activo {
		return "", ErrInvalidToken
	}

	return s.tokens.IssueAccess(user.CI, user.Rol)
}

// CurrentUser resolves an access-token subject to an active account.
func (s *AuthService) CurrentUser(ci string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("ci = ?", ci).First(&user).Error; err != nil {
		return nil, ErrUserNotFound
	}
	if !user.Activo {
		return nil, ErrInactiveAccount
	}
	return &user, nil
}

// GoogleSignIn finds or creates the account for a verified Google
// identity. An assertion without an email is rejected outright and
// nothing is created.
func (s *AuthService) GoogleSignIn(identity *google.Identity) (*dto.AuthResponse, error) {
	if identity == nil || identity.Email == "" {
		return nil, ErrMissingEmail
	}

	provider := google.ProviderName
	now := time.Now().UTC()

	var user models.User
	err := s.db.Where("correo = ?", identity.Email).First(&user).Error

	switch {
	case err == nil:
		// Existing account: refresh the linkage fields and last access,
		// leaving any password hash untouched.
		updates := map[string]interface{}{
			"provider":      provider,
			"provider_id":   identity.Subject,
			"ultimo_acceso": now,
		}
		if identity.Picture != "" {
			updates["avatar_url"] = identity.Picture
		}
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update oauth linkage: %w", err)
		}
		user.Provider = &provider
		user.ProviderID = &identity.Subject
		if identity.Picture != "" {
			user.AvatarURL = &identity.Picture
		}
		user.UltimoAcceso = &now

	case errors.Is(err, gorm.ErrRecordNotFound):
		apellido := identity.FamilyName
		if apellido == "" {
			apellido = "OAuth"
		}
		user = models.User{
			CI:              fmt.Sprintf("GOOGLE_%s", identity.Subject),
			Nombres:         identity.GivenName,
			ApellidoPaterno: apellido,
			FechaNacimiento: providerSentinelBirthDate,
			Sexo:            models.SexUnspecified,
			Correo:          identity.Email,
			Provider:        &provider,
			ProviderID:      &identity.Subject,
			Activo:          true,
			Rol:             models.RoleUser,
			UltimoAcceso:    &now,
		}
		if identity.Picture != "" {
			user.AvatarURL = &identity.Picture
		}
		if err := s.db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to create oauth user: %w", err)
		}

	default:
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	return s.issuePair(&user)
}

func (s *AuthService) touchLastAccess(user *models.User) error {
	now := time.Now().UTC()
	if err := s.db.Model(user).Update("ultimo_acceso", now).Error; err != nil {
		return fmt.Errorf("failed to update last access: %w", err)
	}
	user.UltimoAcceso = &now
	return nil
}

func (s *AuthService) issuePair(user *models.User) (*dto.AuthResponse, error) {
	access, refresh, err := s.tokens.Issue(user.CI, user.Rol)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return &dto.AuthResponse{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func normalizedPhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	digits := validation.NormalizePhone(*phone)
	return &digits
}
