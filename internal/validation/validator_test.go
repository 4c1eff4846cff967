package validation

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edificio-gestion/backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func strptr(s string) *string { return &s }

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		CI:              "12345678",
		Nombres:         "Juan Carlos",
		ApellidoPaterno: "Pérez",
		FechaNacimiento: "1990-05-15",
		Sexo:            "M",
		Correo:          "juan@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	}
}

func TestRegisterValid(t *testing.T) {
	v := New()
	req := validRegister()
	if errs := v.Check(&req); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestIdentifierRules(t *testing.T) {
	v := New()
	cases := []struct {
		ci string
		ok bool
	}{
		{"12345678", true},
		{"ABC123", true},
		{"  AB1  ", true}, // trimmed before the length check
		{"12", false},
		{"  a1  ", false},
		{"ab-123", false},
		{"", false},
	}
	for _, tc := range cases {
		req := validRegister()
		req.CI = tc.ci
		errs := v.Check(&req)
		got := errs["ci"] == nil
		if got != tc.ok {
			t.Errorf("ci %q: accepted=%v, want %v (errs: %v)", tc.ci, got, tc.ok, errs["ci"])
		}
	}
}

func TestPhoneRules(t *testing.T) {
	v := New()
	cases := []struct {
		phone string
		ok    bool
	}{
		{"123-456-7890", true}, // 10 digits after stripping
		{"+591 78901234", true},
		{"1234567", true},
		{"12345", false},
		{"1234567890123456", false},
	}
	for _, tc := range cases {
		req := validRegister()
		req.Telefono = strptr(tc.phone)
		errs := v.Check(&req)
		got := errs["telefono"] == nil
		if got != tc.ok {
			t.Errorf("telefono %q: accepted=%v, want %v", tc.phone, got, tc.ok)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("123-456-7890"); got != "1234567890" {
		t.Errorf("NormalizePhone = %q, want 1234567890", got)
	}
	if got := NormalizePhone("+591 (789) 01234"); got != "78901234" {
		t.Errorf("NormalizePhone = %q, want 78901234", got)
	}
}

func TestBirthDateBoundaries(t *testing.T) {
	v := New()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	cases := []struct {
		name string
		date time.Time
		ok   bool
	}{
		{"today", today, true},
		{"tomorrow", today.AddDate(0, 0, 1), false},
		{"120 years minus a day", today.AddDate(-120, 0, 1), true},
		{"exactly 120 years", today.AddDate(-120, 0, 0), true},
		{"121 years ago", today.AddDate(-121, 0, 0), false},
	}
	for _, tc := range cases {
		req := validRegister()
		req.FechaNacimiento = tc.date.Format(DateLayout)
		errs := v.Check(&req)
		got := errs["fecha_nacimiento"] == nil
		if got != tc.ok {
			t.Errorf("%s (%s): accepted=%v, want %v", tc.name, req.FechaNacimiento, got, tc.ok)
		}
	}
}

func TestBirthDateFormat(t *testing.T) {
	v := New()
	req := validRegister()
	req.FechaNacimiento = "15/05/1990"
	if errs := v.Check(&req); errs["fecha_nacimiento"] == nil {
		t.Error("expected error for non YYYY-MM-DD date")
	}
}

func TestAge(t *testing.T) {
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		on   time.Time
		want int
	}{
		{time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2020, 5, 14, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2020, 5, 16, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 29},
	}
	for _, tc := range cases {
		if got := Age(birth, tc.on); got != tc.want {
			t.Errorf("Age on %s = %d, want %d", tc.on.Format(DateLayout), got, tc.want)
		}
	}
}

func TestPasswordRules(t *testing.T) {
	v := New()
	cases := []struct {
		password string
		ok       bool
	}{
		{"password123", true},
		{"abc123", true},
		{"abcdef", false}, // no digit
		{"123456", false}, // no letter
		{"a1b2", false},   // too short
	}
	for _, tc := range cases {
		req := validRegister()
		req.Password = tc.password
		req.PasswordConfirm = tc.password
		errs := v.Check(&req)
		got := errs["password"] == nil
		if got != tc.ok {
			t.Errorf("password %q: accepted=%v, want %v", tc.password, got, tc.ok)
		}
	}
}

func TestPasswordConfirmMismatch(t *testing.T) {
	v := New()
	req := validRegister()
	req.PasswordConfirm = "different123"
	errs := v.Check(&req)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if len(errs["password_confirm"]) == 0 {
		t.Errorf("expected error keyed to password_confirm, got %v", errs)
	}
}

func TestSexEnum(t *testing.T) {
	v := New()
	for _, sexo := range []string{"X", "N", "m"} {
		req := validRegister()
		req.Sexo = sexo
		if errs := v.Check(&req); errs["sexo"] == nil {
			t.Errorf("sexo %q: expected rejection", sexo)
		}
	}
}

func TestResidencyDateOrdering(t *testing.T) {
	v := New()
	req := dto.ResidencyCreateRequest{
		PersonaCI:      "12345678",
		DepartamentoID: 1,
		FechaInicio:    "2024-01-01",
		FechaFin:       strptr("2024-01-01"), // not strictly after
	}
	errs := v.Check(&req)
	if len(errs["fecha_fin"]) == 0 {
		t.Errorf("expected error keyed to fecha_fin, got %v", errs)
	}

	req.FechaFin = strptr("2024-06-01")
	if errs := v.Check(&req); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestResidencyStartNotFuture(t *testing.T) {
	v := New()
	future := time.Now().UTC().AddDate(0, 0, 7).Format(DateLayout)
	req := dto.ResidencyCreateRequest{
		PersonaCI:      "12345678",
		DepartamentoID: 1,
		FechaInicio:    future,
	}
	errs := v.Check(&req)
	if len(errs["fecha_inicio"]) == 0 {
		t.Errorf("expected error keyed to fecha_inicio, got %v", errs)
	}
}

func TestParseBodyRejectsNonJSON(t *testing.T) {
	v := New()
	app := fiber.New()
	var gotErrs map[string][]string
	app.Post("/", func(c *fiber.Ctx) error {
		var req dto.LoginRequest
		gotErrs = v.ParseBody(c, &req)
		return c.SendStatus(fiber.StatusOK)
	})

	r := httptest.NewRequest("POST", "/", strings.NewReader("correo=x"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := app.Test(r); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if len(gotErrs[SchemaField]) == 0 {
		t.Errorf("expected %s error, got %v", SchemaField, gotErrs)
	}
}

func TestParseBodyValidJSON(t *testing.T) {
	v := New()
	app := fiber.New()
	var gotErrs map[string][]string
	var gotReq dto.LoginRequest
	app.Post("/", func(c *fiber.Ctx) error {
		gotErrs = v.ParseBody(c, &gotReq)
		return c.SendStatus(fiber.StatusOK)
	})

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"correo":"a@b.com","password":"secret1"}`))
	r.Header.Set("Content-Type", "application/json")
	if _, err := app.Test(r); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotErrs != nil {
		t.Errorf("expected no errors, got %v", gotErrs)
	}
	if gotReq.Correo != "a@b.com" {
		t.Errorf("correo = %q", gotReq.Correo)
	}
}
