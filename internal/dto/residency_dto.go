package dto

type ResidencyCreateRequest struct {
	PersonaCI      string  `json:"persona_ci" validate:"required,identifier"`
	DepartamentoID uint    `json:"departamento_id" validate:"required"`
	FechaInicio    string  `json:"fecha_inicio" validate:"required,datestr"`
	FechaFin       *string `json:"fecha_fin" validate:"omitempty,datestr"`
	EsPropietario  *bool   `json:"es_propietario"`
	Activo         *bool   `json:"activo"`
}

type ResidencyUpdateRequest struct {
	DepartamentoID *uint   `json:"departamento_id"`
	FechaInicio    *string `json:"fecha_inicio" validate:"omitempty,datestr"`
	FechaFin       *string `json:"fecha_fin" validate:"omitempty,datestr"`
	EsPropietario  *bool   `json:"es_propietario"`
	Activo         *bool   `json:"activo"`
}
