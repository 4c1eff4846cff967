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

var (
	ErrPersonExists   = errors.New("ya existe una persona registrada con este CI")
	ErrPersonNotFound = errors.New("persona no encontrada")
)

type PersonService struct {
	db *gorm.DB
}

func NewPersonService(db *gorm.DB) *PersonService {
	return &PersonService{db: db}
}

func (s *PersonService) List(page, perPage int, activo *bool) ([]models.Person, int64, error) {
	var total int64
	if err := s.db.Model(&models.Person{}).
		Scopes(database.FilterActivo(activo)).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count persons: %w", err)
	}

	var persons []models.Person
	if err := s.db.
		Scopes(database.FilterActivo(activo), database.Paginate(page, perPage)).
		Order("ci").
		Find(&persons).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, total, nil
}

func (s *PersonService) Create(req *dto.PersonCreateRequest) (*models.Person, error) {
	var existing models.Person
	if err := s.db.Where("ci = ?", req.CI).First(&existing).Error; err == nil {
		return nil, ErrPersonExists
	}

	person := models.Person{
		CI:              req.CI,
		Nombres:         req.Nombres,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		Sexo:            req.Sexo,
		Telefono:        normalizedPhone(req.Telefono),
		Correo:          req.Correo,
		Direccion:       req.Direccion,
		FotoURL:         req.FotoURL,
		Activo:          true,
	}
	if req.Activo != nil {
		person.Activo = *req.Activo
	}
	if req.FechaNacimiento != nil {
		d, err := validation.ParseDate(*req.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date: %w", err)
		}
		person.FechaNacimiento = &d
	}

	if err := s.db.Create(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPersonExists
		}
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return &person, nil
}

func (s *PersonService) Get(ci string) (*models.Person, error) {
	var person models.Person
	if err := s.db.Where("ci = ?", ci).First(&person).Error; err != nil {
		return nil, ErrPersonNotFound
	}
	return &person, nil
}

func (s *PersonService) Update(ci string, req *dto.PersonUpdateRequest) (*models.Person, error) {
	person, err := s.Get(ci)
	if err != nil {
		return nil, err
	}

	if req.Nombres != nil {
		person.Nombres = *req.Nombres
	}
	if req.ApellidoPaterno != nil {
		person.ApellidoPaterno = req.ApellidoPaterno
	}
	if req.ApellidoMaterno != nil {
		person.ApellidoMaterno = req.ApellidoMaterno
	}
	if req.FechaNacimiento != nil {
		d, err := validation.ParseDate(*req.FechaNacimiento)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date: %w", err)
		}
		person.FechaNacimiento = &d
	}
	if req.Sexo != nil {
		person.Sexo = req.Sexo
	}
	if req.Telefono != nil {
		person.Telefono = normalizedPhone(req.Telefono)
	}
	if req.Correo != nil {
		person.Correo = req.Correo
	}
	if req.Direccion != nil {
		person.Direccion = req.Direccion
	}
	if req.FotoURL != nil {
		person.FotoURL = req.FotoURL
	}
	if req.Activo != nil {
		person.Activo = *req.Activo
	}

	if err := s.db.Save(person).Error; err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	return person, nil
}

// Delete is a soft delete: the row stays, activo flips to false.
func (s *PersonService) Delete(ci string) error {
	person, err := s.Get(ci)
	if err != nil {
		return err
	}
	if err := s.db.Model(person).Update("activo", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate person: %w", err)
	}
	return nil
}
