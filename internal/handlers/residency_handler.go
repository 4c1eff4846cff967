package handlers

import (
	"errors"
	"log/slog"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/services"
	"github.com/edificio-gestion/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type ResidencyHandler struct {
	residencyService *services.ResidencyService
	validator        *validation.Validator
}

func NewResidencyHandler(residencyService *services.ResidencyService, validator *validation.Validator) *ResidencyHandler {
	return &ResidencyHandler{residencyService: residencyService, validator: validator}
}

func (h *ResidencyHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	var activo *bool
	if raw := c.Query("activo"); raw != "" {
		v := raw == "true" || raw == "1"
		activo = &v
	}

	residencies, total, err := h.residencyService.List(page, perPage, activo)
	if err != nil {
		slog.Error("residency list failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	if perPage > 100 {
		perPage = 100
	}
	return respondOK(c, fiber.Map{
		"residentes": residencies,
		"pagination": dto.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	})
}

func (h *ResidencyHandler) Create(c *fiber.Ctx) error {
	var req dto.ResidencyCreateRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	residency, err := h.residencyService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPersonNotFound),
			errors.Is(err, services.ErrDepartmentNotFound):
			return respondError(c, fiber.StatusNotFound, err.Error())
		}
		slog.Error("residency create failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondCreated(c, fiber.Map{"residente": residency})
}

func (h *ResidencyHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}

	residency, err := h.residencyService.Get(uint(id))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, err.Error())
	}
	return respondOK(c, fiber.Map{"residente": residency})
}

func (h *ResidencyHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.ResidencyUpdateRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	residency, err := h.residencyService.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrResidencyNotFound),
			errors.Is(err, services.ErrDepartmentNotFound):
			return respondError(c, fiber.StatusNotFound, err.Error())
		}
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	return respondOK(c, fiber.Map{"residente": residency})
}

func (h *ResidencyHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.residencyService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrResidencyNotFound) {
			return respondError(c, fiber.StatusNotFound, err.Error())
		}
		slog.Error("residency delete failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
	return respondMessage(c, "Residencia eliminada exitosamente")
}
