package models

import (
	"strings"
	"time"
)

// Person is the profile-only record ("persona" table). It carries no
// credentials; login-capable accounts live in the User model.
type Person struct {
	CI                 string     `gorm:"primaryKey;size:20" json:"ci"`
	Nombres            string     `gorm:"size:120;not null" json:"nombres"`
	ApellidoPaterno    *string    `gorm:"size:120" json:"apellido_paterno"`
	ApellidoMaterno    *string    `gorm:"size:120" json:"apellido_materno"`
	FechaNacimiento    *time.Time `gorm:"type:date" json:"fecha_nacimiento"`
	Sexo               *string    `gorm:"size:1" json:"sexo"`
	Telefono           *string    `gorm:"size:50" json:"telefono"`
	Correo             *string    `gorm:"size:150" json:"correo"`
	Direccion          *string    `gorm:"size:200" json:"direccion"`
	FotoURL            *string    `gorm:"size:300" json:"foto_url"`
	Activo             bool       `gorm:"default:true" json:"activo"`
	FechaCreacion      time.Time  `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time  `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (Person) TableName() string { return "persona" }

func (p *Person) NombreCompleto() string {
	parts := []string{p.Nombres}
	if p.ApellidoPaterno != nil && *p.ApellidoPaterno != "" {
		parts = append(parts, *p.ApellidoPaterno)
	}
	if p.ApellidoMaterno != nil && *p.ApellidoMaterno != "" {
		parts = append(parts, *p.ApellidoMaterno)
	}
	return strings.Join(parts, " ")
}
