package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/accounting-setup/internal/application/partner"
	"github.com/jhoicas/accounting-setup/internal/application/setup"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SetupUC       *setup.UseCase
	PartnerUC     *partner.UseCase
	SetupDefaults setup.Options
	JWTSecret     string
	Log           zerolog.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(RoleAdmin)}

	setupHandler := NewSetupHandler(deps.SetupUC, deps.SetupDefaults, deps.Log)
	partnerHandler := NewPartnerHandler(deps.PartnerUC)

	setupGroup := api.Group("/setup", adminOnly...)
	setupGroup.Post("/apply", setupHandler.Apply)
	setupGroup.Get("/defaults", partnerHandler.Defaults)

	partners := api.Group("/partners", adminOnly...)
	partners.Post("/", partnerHandler.Create)
}
