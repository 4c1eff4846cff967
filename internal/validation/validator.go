package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SchemaField is the synthetic error key for failures of the request
// envelope itself (missing or malformed JSON body).
const SchemaField = "_schema"

// Validator turns raw request payloads into normalized records or a
// field->messages error map. It never panics on caller-supplied data.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the JSON field names clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("identifier", validIdentifier)
	v.RegisterValidation("phone", validPhone)
	v.RegisterValidation("datestr", validDateStr)
	v.RegisterValidation("birthdate", validBirthDate)
	v.RegisterValidation("userpassword", validUserPassword)

	v.RegisterStructValidation(registerCrossChecks, dto.RegisterRequest{})
	v.RegisterStructValidation(residencyCreateCrossChecks, dto.ResidencyCreateRequest{})
	v.RegisterStructValidation(residencyUpdateCrossChecks, dto.ResidencyUpdateRequest{})

	return &Validator{v: v}
}

// ParseBody decodes the JSON request body into dst and validates it.
// A nil return means dst holds a valid normalized record.
func (val *Validator) ParseBody(c *fiber.Ctx, dst interface{}) map[string][]string {
	if !strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return map[string][]string{SchemaField: {"Content-Type debe ser application/json"}}
	}
	if err := c.BodyParser(dst); err != nil {
		return map[string][]string{SchemaField: {"El cuerpo de la petición no es JSON válido"}}
	}
	return val.Check(dst)
}

// Check validates an already-decoded record.
func (val *Validator) Check(s interface{}) map[string][]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{SchemaField: {"Datos de entrada inválidos"}}
	}

	out := make(map[string][]string, len(verrs))
	for _, e := range verrs {
		field := e.Field()
		out[field] = append(out[field], message(e))
	}
	return out
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Este campo es requerido"
	case "identifier":
		return "Debe tener al menos 3 caracteres alfanuméricos"
	case "phone":
		return "Teléfono debe tener entre 7 y 15 dígitos"
	case "birthdate":
		return "Fecha de nacimiento inválida: debe ser pasada y la edad entre 0 y 120 años"
	case "datestr":
		return "Formato de fecha inválido, use YYYY-MM-DD"
	case "userpassword":
		return "Contraseña debe tener al menos 6 caracteres, con al menos una letra y un número"
	case "passwordmatch":
		return "Las contraseñas no coinciden"
	case "notfuture":
		return "Fecha de inicio no puede ser futura"
	case "afterstart":
		return "Fecha fin debe ser posterior a fecha inicio"
	case "email":
		return "Correo electrónico inválido"
	case "url":
		return "URL inválida"
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s", e.Param())
	case "min":
		return fmt.Sprintf("Debe tener al menos %s caracteres", e.Param())
	case "max":
		return fmt.Sprintf("Debe ser como máximo %s", e.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s", e.Param())
	default:
		return "Valor inválido"
	}
}

func registerCrossChecks(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.RegisterRequest)
	if req.Password != req.PasswordConfirm {
		sl.ReportError(req.PasswordConfirm, "password_confirm", "PasswordConfirm", "passwordmatch", "")
	}
}

func residencyCreateCrossChecks(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.ResidencyCreateRequest)
	checkResidencyDates(sl, req.FechaInicio, req.FechaFin)
}

func residencyUpdateCrossChecks(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.ResidencyUpdateRequest)
	inicio := ""
	if req.FechaInicio != nil {
		inicio = *req.FechaInicio
	}
	checkResidencyDates(sl, inicio, req.FechaFin)
}

// checkResidencyDates enforces the date ordering rules. Unparsable
// values are skipped here: the field-level datestr rule already
// reports them.
func checkResidencyDates(sl validator.StructLevel, inicioStr string, finStr *string) {
	if inicioStr == "" {
		return
	}
	inicio, err := ParseDate(inicioStr)
	if err != nil {
		return
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if inicio.After(today) {
		sl.ReportError(inicioStr, "fecha_inicio", "FechaInicio", "notfuture", "")
	}
	if finStr == nil {
		return
	}
	fin, err := ParseDate(*finStr)
	if err != nil {
		return
	}
	if !fin.After(inicio) {
		sl.ReportError(*finStr, "fecha_fin", "FechaFin", "afterstart", "")
	}
}
