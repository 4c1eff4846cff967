package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Claims are the signed session claims. Subject is the account CI.
type Claims struct {
	Type string `json:"type"`
	Rol  string `json:"rol,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and verifies stateless HS256 session tokens. There is
// no revocation store: logout is client-side token discard, and the
// account's activo flag is re-checked by callers on every use.
type Manager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewManager(secret string, accessExpiry, refreshExpiry time.Duration) *Manager {
	return &Manager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Issue returns an access/refresh token pair bound to the account CI.
func (m *Manager) Issue(ci, rol string) (access string, refresh string, err error) {
	access, err = m.sign(ci, rol, typeAccess, m.accessExpiry)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.sign(ci, rol, typeRefresh, m.refreshExpiry)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// IssueAccess returns a fresh access token only, used by the refresh flow.
func (m *Manager) IssueAccess(ci, rol string) (string, error) {
	return m.sign(ci, rol, typeAccess, m.accessExpiry)
}

// ParseAccess verifies signature, expiry and token type of an access token.
func (m *Manager) ParseAccess(raw string) (*Claims, error) {
	return m.parse(raw, typeAccess)
}

// ParseRefresh verifies signature, expiry and token type of a refresh token.
func (m *Manager) ParseRefresh(raw string) (*Claims, error) {
	return m.parse(raw, typeRefresh)
}

func (m *Manager) sign(ci, rol, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: tokenType,
		Rol:  rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ci,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) parse(raw, wantType string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Type != wantType || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
