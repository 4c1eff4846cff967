package services

import (
	"testing"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/edificio-gestion/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every session on the same in-memory DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Person{},
		&models.User{},
		&models.Department{},
		&models.Residency{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		CI:              "12345678",
		Nombres:         "Juan Carlos",
		ApellidoPaterno: "Pérez",
		FechaNacimiento: "1990-05-15",
		Sexo:            "M",
		Telefono:        strptr("123-456-7890"),
		Correo:          "juan@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	}
}
