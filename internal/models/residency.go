package models

import "time"

// Residency links a person to a department for a period of time
// ("residentes" table). FechaFin is open-ended while the residency is
// current.
type Residency struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PersonaCI      string     `gorm:"size:20;not null;index" json:"persona_ci"`
	DepartamentoID uint       `gorm:"not null;index" json:"departamento_id"`
	FechaInicio    time.Time  `gorm:"type:date;not null" json:"fecha_inicio"`
	FechaFin       *time.Time `gorm:"type:date" json:"fecha_fin"`
	EsPropietario  bool       `gorm:"default:false" json:"es_propietario"`
	Activo         bool       `gorm:"default:true" json:"activo"`
	FechaCreacion  time.Time  `gorm:"autoCreateTime" json:"fecha_creacion"`

	Persona      Person     `gorm:"foreignKey:PersonaCI;references:CI" json:"-"`
	Departamento Department `gorm:"foreignKey:DepartamentoID" json:"-"`
}

func (Residency) TableName() string { return "residentes" }
