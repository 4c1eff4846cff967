package services

import (
	"errors"
	"fmt"

	"github.com/edificio-gestion/backend/internal/database"
	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/models"
	"github.com/edificio-gestion/backend/internal/validation"
	"gorm.io/gorm"
)

var ErrResidencyNotFound = errors.New("residencia no encontrada")

type ResidencyService struct {
	db *gorm.DB
}

func NewResidencyService(db *gorm.DB) *ResidencyService {
	return &ResidencyService{db: db}
}

func (s *ResidencyService) List(page, perPage int, activo *bool) ([]models.Residency, int64, error) {
	var total int64
	if err := s.db.Model(&models.Residency{}).
		Scopes(database.FilterActivo(activo)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count residencies: %w", err)
	}

	var residencies []models.Residency
	if err := s.db.
		Scopes(database.FilterActivo(activo), database.Paginate(page, perPage)).
		Order("fecha_inicio desc").
		Find(&residencies).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list residencies: %w", err)
	}
	return residencies, total, nil
}

// Create links a person to a department. Both referenced rows must
// exist; the date ordering rules were already enforced by validation.
func (s *ResidencyService) Create(req *dto.ResidencyCreateRequest) (*models.Residency, error) {
	var person models.Person
	if err := s.db.Where("ci = ?", req.PersonaCI).First(&person).Error; err != nil {
		return nil, ErrPersonNotFound
	}
	var dept models.Department
	if err := s.db.First(&dept, req.DepartamentoID).Error; err != nil {
		return nil, ErrDepartmentNotFound
	}

	inicio, err := validation.ParseDate(req.FechaInicio)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	residency := models.Residency{
		PersonaCI:      req.PersonaCI,
		DepartamentoID: req.DepartamentoID,
		FechaInicio:    inicio,
		EsPropietario:  false,
		Activo:         true,
	}
	if req.FechaFin != nil {
		fin, err := validation.ParseDate(*req.FechaFin)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		residency.FechaFin = &fin
	}
	if req.EsPropietario != nil {
		residency.EsPropietario = *req.EsPropietario
	}
	if req.Activo != nil {
		residency.Activo = *req.Activo
	}

	if err := s.db.Create(&residency).Error; err != nil {
		return nil, fmt.Errorf("failed to create residency: %w", err)
	}
	return &residency, nil
}

func (s *ResidencyService) Get(id uint) (*models.Residency, error) {
	var residency models.Residency
	if err := s.db.First(&residency, id).Error; err != nil {
		return nil, ErrResidencyNotFound
	}
	return &residency, nil
}

func (s *ResidencyService) Update(id uint, req *dto.ResidencyUpdateRequest) (*models.Residency, error) {
	residency, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.DepartamentoID != nil {
		var dept models.Department
		if err := s.db.First(&dept, *req.DepartamentoID).Error; err != nil {
			return nil, ErrDepartmentNotFound
		}
		residency.DepartamentoID = *req.DepartamentoID
	}
	if req.FechaInicio != nil {
		inicio, err := validation.ParseDate(*req.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		residency.FechaInicio = inicio
	}
	if req.FechaFin != nil {
		fin, err := validation.ParseDate(*req.FechaFin)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		residency.FechaFin = &fin
	}
	if req.EsPropietario != nil {
		residency.EsPropietario = *req.EsPropietario
	}
	if req.Activo != nil {
		residency.Activo = *req.Activo
	}

	// End date before start can still arise when only one side changed.
	if residency.FechaFin != nil && !residency.FechaFin.After(residency.FechaInicio) {
		return nil, errors.New("fecha fin debe ser posterior a fecha inicio")
	}

	if err := s.db.Save(residency).Error; err != nil {
		return nil, fmt.Errorf("failed to update residency: %w", err)
	}
	return residency, nil
}

// Delete is a soft delete: the history row stays, activo flips to false.
func (s *ResidencyService) Delete(id uint) error {
	residency, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Model(residency).Update("activo", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate residency: %w", err)
	}
	return nil
}
