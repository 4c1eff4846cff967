package dto

import "github.com/edificio-gestion/backend/internal/models"

type RegisterRequest struct {
	CI              string  `json:"ci" validate:"required,identifier"`
	Nombres         string  `json:"nombres" validate:"required,min=2"`
	ApellidoPaterno string  `json:"apellido_paterno" validate:"required"`
	ApellidoMaterno *string `json:"apellido_materno"`
	FechaNacimiento string  `json:"fecha_nacimiento" validate:"required,birthdate"`
	Sexo            string  `json:"sexo" validate:"required,oneof=M F"`
	Telefono        *string `json:"telefono" validate:"omitempty,phone"`
	Correo          string  `json:"correo" validate:"required,email"`
	Direccion       *string `json:"direccion"`
	Password        string  `json:"password" validate:"required,userpassword"`
	PasswordConfirm string  `json:"password_confirm" validate:"required"`
}

type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// GoogleTokenRequest authenticates directly with a Google id_token,
// used by browser clients that run the consent flow themselves.
type GoogleTokenRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}
