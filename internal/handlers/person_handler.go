package handlers

import (
	"errors"
	"log/slog"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/services"
	"github.com/edificio-gestion/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type PersonHandler struct {
	personService *services.PersonService
	validator     *validation.Validator
}

func NewPersonHandler(personService *services.PersonService, validator *validation.Validator) *PersonHandler {
	return &PersonHandler{personService: personService, validator: validator}
}

func (h *PersonHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	var activo *bool
	if raw := c.Query("activo"); raw != "" {
		v := raw == "true" || raw == "1"
		activo = &v
	}

	persons, total, err := h.personService.List(page, perPage, activo)
	if err != nil {
		slog.Error("person list failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	if perPage > 100 {
		perPage = 100
	}
	return respondOK(c, fiber.Map{
		"personas": persons,
		"pagination": dto.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	})
}

func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var req dto.PersonCreateRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	person, err := h.personService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrPersonExists) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("person create failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondCreated(c, fiber.Map{"persona": person})
}

func (h *PersonHandler) Get(c *fiber.Ctx) error {
	person, err := h.personService.Get(c.Params("ci"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, err.Error())
	}
	return respondOK(c, fiber.Map{"persona": person})
}

func (h *PersonHandler) Update(c *fiber.Ctx) error {
	var req dto.PersonUpdateRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	person, err := h.personService.Update(c.Params("ci"), &req)
	if err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return respondError(c, fiber.StatusNotFound, err.Error())
		}
		slog.Error("person update failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondOK(c, fiber.Map{"persona": person})
}

func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	if err := h.personService.Delete(c.Params("ci")); err != nil {
		if errors.Is(err, services.ErrPersonNotFound) {
			return respondError(c, fiber.StatusNotFound, err.Error())
		}
		slog.Error("person delete failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
	return respondMessage(c, "Persona eliminada exitosamente")
}

func totalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
