package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mobiusclinic/clinica_backend/internal/api/http/handler"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
)

func (r *Router) registerPresetRoutes(
	api fiber.Router,
	h *handler.PresetHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/presets", authRequired)
	group.Get("/", requirePerm(authorize.ResourcePreset, authorize.ActionList), h.List)
	group.Get("/:level", requirePerm(authorize.ResourcePreset, authorize.ActionRead), h.GetByLevel)
}
