package models

import (
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// SexUnspecified is written for provider-created accounts where the
	// assertion carries no sex information. Clients may only submit M/F.
	SexUnspecified = "N"
)

// User is the login-capable account record ("personas" table). It is a
// superset of the Person profile fields plus credentials, role and
// third-party linkage. PasswordHash is nil for provider-only accounts.
type User struct {
	CI                 string     `gorm:"primaryKey;size:20" json:"ci"`
	Nombres            string     `gorm:"size:100;not null" json:"nombres"`
	ApellidoPaterno    string     `gorm:"size:50;not null" json:"apellido_paterno"`
	ApellidoMaterno    *string    `gorm:"size:50" json:"apellido_materno"`
	FechaNacimiento    time.Time  `gorm:"type:date;not null" json:"fecha_nacimiento"`
	Sexo               string     `gorm:"size:1;not null" json:"sexo"`
	Telefono           *string    `gorm:"size:15" json:"telefono"`
	Correo             string     `gorm:"size:120;not null;uniqueIndex" json:"correo"`
	Direccion          *string    `gorm:"type:text" json:"direccion"`
	PasswordHash       *string    `gorm:"size:255" json:"-"`
	Activo             bool       `gorm:"default:true" json:"activo"`
	Rol                string     `gorm:"size:20;default:'user'" json:"rol"`
	UltimoAcceso       *time.Time `json:"ultimo_acceso"`
	Provider           *string    `gorm:"size:50" json:"provider"`
	ProviderID         *string    `gorm:"size:255" json:"-"`
	AvatarURL          *string    `gorm:"size:500" json:"avatar_url"`
	FechaCreacion      time.Time  `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time  `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (User) TableName() string { return "personas" }

func (u *User) NombreCompleto() string {
	parts := []string{u.Nombres, u.ApellidoPaterno}
	if u.ApellidoMaterno != nil && *u.ApellidoMaterno != "" {
		parts = append(parts, *u.ApellidoMaterno)
	}
	return strings.Join(parts, " ")
}

// IsOAuthUser reports whether the account was linked to an external
// identity provider.
func (u *User) IsOAuthUser() bool {
	return u.Provider != nil && *u.Provider != "" && *u.Provider != "local"
}
