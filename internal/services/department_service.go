package services

import (
	"errors"
	"fmt"

	"github.com/edificio-gestion/backend/internal/database"
	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDepartmentExists   = errors.New("ya existe un departamento con este número")
	ErrDepartmentNotFound = errors.New("departamento no encontrado")
)

type DepartmentService struct {
	db *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{db: db}
}

func (s *DepartmentService) List(page, perPage int, estado *string) ([]models.Department, int64, error) {
	query := s.db.Model(&models.Department{})
	if estado != nil && *estado != "" {
		query = query.Where("estado = ?", *estado)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", err)
	}

	var departments []models.Department
	if err := query.
		Scopes(database.Paginate(page, perPage)).
		Order("piso, numero").
		Find(&departments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, total, nil
}

func (s *DepartmentService) Create(req *dto.DepartmentCreateRequest) (*models.Department, error) {
	var existing models.Department
	if err := s.db.Where("numero = ?", req.Numero).First(&existing).Error; err == nil {
		return nil, ErrDepartmentExists
	}

	dept := models.Department{
		Numero:          req.Numero,
		Piso:            req.Piso,
		Tipo:            req.Tipo,
		MetrosCuadrados: req.MetrosCuadrados,
		Estado:          models.DeptAvailable,
	}
	if req.Estado != nil {
		dept.Estado = *req.Estado
	}

	if err := s.db.Create(&dept).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return &dept, nil
}

func (s *DepartmentService) Get(id uint) (*models.Department, error) {
	var dept models.Department
	if err := s.db.First(&dept, id).Error; err != nil {
		return nil, ErrDepartmentNotFound
	}
	return &dept, nil
}

func (s *DepartmentService) Update(id uint, req *dto.DepartmentUpdateRequest) (*models.Department, error) {
	dept, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Numero != nil && *req.Numero != dept.Numero {
		var existing models.Department
		if err := s.db.Where("numero = ? AND id <> ?", *req.Numero, id).First(&existing).Error; err == nil {
			return nil, ErrDepartmentExists
		}
		dept.Numero = *req.Numero
	}
	if req.Piso != nil {
		dept.Piso = *req.Piso
	}
	if req.Tipo != nil {
		dept.Tipo = req.Tipo
	}
	if req.MetrosCuadrados != nil {
		dept.MetrosCuadrados = req.MetrosCuadrados
	}
	if req.Estado != nil {
		dept.Estado = *req.Estado
	}

	if err := s.db.Save(dept).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return dept, nil
}

// Delete marks the department as under maintenance rather than removing
// the row; residency history must keep resolving.
func (s *DepartmentService) Delete(id uint) error {
	dept, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Model(dept).Update("estado", models.DeptMaintenance).Error; err != nil {
		return fmt.Errorf("failed to deactivate department: %w", err)
	}
	return nil
}
