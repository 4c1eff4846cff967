package dto

type PersonCreateRequest struct {
	CI              string  `json:"ci" validate:"required,identifier"`
	Nombres         string  `json:"nombres" validate:"required,min=2"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,birthdate"`
	Sexo            *string `json:"sexo" validate:"omitempty,oneof=M F"`
	Telefono        *string `json:"telefono" validate:"omitempty,phone"`
	Correo          *string `json:"correo" validate:"omitempty,email"`
	Direccion       *string `json:"direccion"`
	FotoURL         *string `json:"foto_url" validate:"omitempty,url"`
	Activo          *bool   `json:"activo"`
}

type PersonUpdateRequest struct {
	Nombres         *string `json:"nombres" validate:"omitempty,min=2"`
	ApellidoPaterno *string `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,birthdate"`
	Sexo            *string `json:"sexo" validate:"omitempty,oneof=M F"`
	Telefono        *string `json:"telefono" validate:"omitempty,phone"`
	Correo          *string `json:"correo" validate:"omitempty,email"`
	Direccion       *string `json:"direccion"`
	FotoURL         *string `json:"foto_url" validate:"omitempty,url"`
	Activo          *bool   `json:"activo"`
}
