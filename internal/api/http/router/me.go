package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mobiusclinic/clinica_backend/internal/api/http/handler"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
)

func (r *Router) registerMeRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	me := api.Group("/me", authRequired)

	// Profile
	me.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.GetProfile)
	me.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.UpdateProfile)

	// Mental state
	me.Get("/mental", requirePerm(authorize.ResourceMentalState, authorize.ActionRead), h.GetMentalState)
	me.Post("/mental/level", requirePerm(authorize.ResourceMentalState, authorize.ActionUpdate), h.ChangeMentalLevel)

	// Map worksheets (read-only on the patient side)
	me.Get("/awareness", requirePerm(authorize.ResourceMap, authorize.ActionRead), h.GetAwareness)
	me.Get("/nightmare", requirePerm(authorize.ResourceMap, authorize.ActionRead), h.GetNightmare)

	// Authored ledgers
	me.Get("/recipes", requirePerm(authorize.ResourceCompound, authorize.ActionList), h.ListRecipes)
	me.Post("/recipes", requirePerm(authorize.ResourceCompound, authorize.ActionCreate), h.CreateRecipe)
	me.Get("/devices", requirePerm(authorize.ResourceCompound, authorize.ActionList), h.ListDevices)
	me.Post("/devices", requirePerm(authorize.ResourceCompound, authorize.ActionCreate), h.CreateDevice)
}
