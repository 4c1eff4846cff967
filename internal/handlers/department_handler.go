package handlers

import (
	"errors"
	"log/slog"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/services"
	"github.com/edificio-gestion/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type DepartmentHandler struct {
	departmentService *services.DepartmentService
	validator         *validation.Validator
}

func NewDepartmentHandler(departmentService *services.DepartmentService, validator *validation.Validator) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService, validator: validator}
}

func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 10)

	var estado *string
	if raw := c.Query("estado"); raw != "" {
		estado = &raw
	}

	departments, total, err := h.departmentService.List(page, perPage, estado)
	if err != nil {
		slog.Error("department list failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	if perPage > 100 {
		perPage = 100
	}
	return respondOK(c, fiber.Map{
		"departamentos": departments,
		"pagination": dto.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	})
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentCreateRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	dept, err := h.departmentService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrDepartmentExists) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("department create failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondCreated(c, fiber.Map{"departamento": dept})
}

func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}

	dept, err := h.departmentService.Get(uint(id))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, err.Error())
	}
	return respondOK(c, fiber.Map{"departamento": dept})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.DepartmentUpdateRequest
	if errs := h.validator.ParseBody(c, &req); errs != nil {
		return respondValidation(c, errs)
	}

	dept, err := h.departmentService.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			return respondError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrDepartmentExists):
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		slog.Error("department update failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}

	return respondOK(c, fiber.Map{"departamento": dept})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return respondError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := h.departmentService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			return respondError(c, fiber.StatusNotFound, err.Error())
		}
		slog.Error("department delete failed", "error", err)
		return respondError(c, fiber.StatusInternalServerError, "Error interno del servidor")
	}
	return respondMessage(c, "Departamento marcado en mantenimiento")
}
