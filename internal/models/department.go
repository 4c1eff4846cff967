package models

import "time"

// Department states.
const (
	DeptAvailable   = "disponible"
	DeptOccupied    = "ocupado"
	DeptMaintenance = "mantenimiento"
)

type Department struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Numero             string    `gorm:"size:10;not null;uniqueIndex" json:"numero"`
	Piso               int       `gorm:"not null" json:"piso"`
	Tipo               *string   `gorm:"size:50" json:"tipo"`
	MetrosCuadrados    *float64  `gorm:"type:numeric(8,2)" json:"metros_cuadrados"`
	Estado             string    `gorm:"size:20;default:'disponible'" json:"estado"`
	FechaCreacion      time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	FechaActualizacion time.Time `gorm:"autoUpdateTime" json:"fecha_actualizacion"`
}

func (Department) TableName() string { return "departamento" }
