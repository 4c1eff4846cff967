package dto

type DepartmentCreateRequest struct {
	Numero          string   `json:"numero" validate:"required"`
	Piso            int      `json:"piso" validate:"required,min=1,max=50"`
	Tipo            *string  `json:"tipo"`
	MetrosCuadrados *float64 `json:"metros_cuadrados" validate:"omitempty,gt=0"`
	Estado          *string  `json:"estado" validate:"omitempty,oneof=disponible ocupado mantenimiento"`
}

type DepartmentUpdateRequest struct {
	Numero          *string  `json:"numero"`
	Piso            *int     `json:"piso" validate:"omitempty,min=1,max=50"`
	Tipo            *string  `json:"tipo"`
	MetrosCuadrados *float64 `json:"metros_cuadrados" validate:"omitempty,gt=0"`
	Estado          *string  `json:"estado" validate:"omitempty,oneof=disponible ocupado mantenimiento"`
}
