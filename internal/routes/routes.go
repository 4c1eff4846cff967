package routes

import (
	"time"

	"github.com/edificio-gestion/backend/internal/config"
	"github.com/edificio-gestion/backend/internal/handlers"
	"github.com/edificio-gestion/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	personHandler *handlers.PersonHandler,
	departmentHandler *handlers.DepartmentHandler,
	residencyHandler *handlers.ResidencyHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Get("/google/login", authHandler.GoogleLogin)
	auth.Get("/google/callback", authHandler.GoogleCallback)
	auth.Post("/google/user", authHandler.GoogleToken)

	jwtGuard := middleware.JWTProtected(cfg)
	loadUser := middleware.RequireAuth(db)
	adminOnly := middleware.RoleGuard("admin")

	api.Get("/auth/me", jwtGuard, loadUser, authHandler.Me)
	api.Get("/auth/verify", jwtGuard, loadUser, authHandler.Verify)
	api.Post("/auth/logout", jwtGuard, loadUser, authHandler.Logout)

	// People
	personas := api.Group("/personas")
	personas.Get("/", personHandler.List)
	personas.Get("/:ci", personHandler.Get)
	personas.Post("/", jwtGuard, loadUser, personHandler.Create)
	personas.Put("/:ci", jwtGuard, loadUser, personHandler.Update)
	personas.Delete("/:ci", jwtGuard, loadUser, adminOnly, personHandler.Delete)

	// Departments
	departamentos := api.Group("/departamentos")
	departamentos.Get("/", departmentHandler.List)
	departamentos.Get("/:id", departmentHandler.Get)
	departamentos.Post("/", jwtGuard, loadUser, adminOnly, departmentHandler.Create)
	departamentos.Put("/:id", jwtGuard, loadUser, adminOnly, departmentHandler.Update)
	departamentos.Delete("/:id", jwtGuard, loadUser, adminOnly, departmentHandler.Delete)

	// Residencies
	residentes := api.Group("/residentes")
	residentes.Get("/", residencyHandler.List)
	residentes.Get("/:id", residencyHandler.Get)
	residentes.Post("/", jwtGuard, loadUser, residencyHandler.Create)
	residentes.Put("/:id", jwtGuard, loadUser, residencyHandler.Update)
	residentes.Delete("/:id", jwtGuard, loadUser, adminOnly, residencyHandler.Delete)
}
