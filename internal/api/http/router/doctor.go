package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mobiusclinic/clinica_backend/internal/api/http/handler"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	api fiber.Router,
	h *handler.DoctorHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctor := api.Group("/doctor", authRequired)

	// Own profile
	doctor.Get("/me", requirePerm(authorize.ResourceDoctor, authorize.ActionRead), h.GetProfile)
	doctor.Patch("/me", requirePerm(authorize.ResourceDoctor, authorize.ActionUpdate), h.UpdateProfile)

	// Cross-patient ledgers
	doctor.Get("/recipes", requirePerm(authorize.ResourceCompound, authorize.ActionManage), h.ListRecipes)
	doctor.Get("/devices", requirePerm(authorize.ResourceCompound, authorize.ActionManage), h.ListDevices)

	// Patient roster
	patients := doctor.Group("/patients", requirePerm(authorize.ResourcePatient, authorize.ActionManage))
	patients.Get("/", h.ListPatients)

	p := patients.Group("/:patientID")
	p.Get("/", h.GetPatient)
	p.Patch("/", h.UpdatePatient)
	p.Patch("/mental", h.UpdateMentalDescription)

	p.Get("/awareness", h.GetAwareness)
	p.Put("/awareness", h.UpdateAwareness)
	p.Get("/nightmare", h.GetNightmare)
	p.Put("/nightmare", h.UpdateNightmare)

	p.Post("/recipes", h.CreateRecipe)
	p.Post("/devices", h.CreateDevice)
}
