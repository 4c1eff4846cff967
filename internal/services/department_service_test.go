package services

import (
	"errors"
	"testing"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/models"
)

func TestDepartmentCreateDefaults(t *testing.T) {
	s := NewDepartmentService(newTestDB(t))

	dept, err := s.Create(&dto.DepartmentCreateRequest{Numero: "101", Piso: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dept.Estado != models.DeptAvailable {
		t.Errorf("estado = %q, want %q", dept.Estado, models.DeptAvailable)
	}
}

func TestDepartmentDuplicateNumero(t *testing.T) {
	s := NewDepartmentService(newTestDB(t))
	if _, err := s.Create(&dto.DepartmentCreateRequest{Numero: "101", Piso: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(&dto.DepartmentCreateRequest{Numero: "101", Piso: 2}); !errors.Is(err, ErrDepartmentExists) {
		t.Errorf("err = %v, want ErrDepartmentExists", err)
	}
}

func TestDepartmentUpdateNumeroConflict(t *testing.T) {
	s := NewDepartmentService(newTestDB(t))
	if _, err := s.Create(&dto.DepartmentCreateRequest{Numero: "101", Piso: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := s.Create(&dto.DepartmentCreateRequest{Numero: "102", Piso: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := s.Update(second.ID, &dto.DepartmentUpdateRequest{Numero: strptr("101")}); !errors.Is(err, ErrDepartmentExists) {
		t.Errorf("err = %v, want ErrDepartmentExists", err)
	}

	// Re-sending its own numero is not a conflict.
	if _, err := s.Update(second.ID, &dto.DepartmentUpdateRequest{Numero: strptr("102"), Piso: intptr(3)}); err != nil {
		t.Errorf("Update with own numero: %v", err)
	}
}

func TestDepartmentDeleteSetsMaintenance(t *testing.T) {
	s := NewDepartmentService(newTestDB(t))
	dept, err := s.Create(&dto.DepartmentCreateRequest{Numero: "101", Piso: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(dept.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := s.Get(dept.ID)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got.Estado != models.DeptMaintenance {
		t.Errorf("estado = %q, want %q", got.Estado, models.DeptMaintenance)
	}
}

func TestDepartmentListByEstado(t *testing.T) {
	s := NewDepartmentService(newTestDB(t))
	if _, err := s.Create(&dto.DepartmentCreateRequest{Numero: "101", Piso: 1}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	ocupado := models.DeptOccupied
	if _, err := s.Create(&dto.DepartmentCreateRequest{Numero: "201", Piso: 2, Estado: &ocupado}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	depts, total, err := s.List(1, 10, &ocupado)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(depts) != 1 {
		t.Fatalf("total = %d len = %d, want 1/1", total, len(depts))
	}
	if depts[0].Numero != "201" {
		t.Errorf("numero = %q, want 201", depts[0].Numero)
	}
}

func intptr(i int) *int { return &i }
