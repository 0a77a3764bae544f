package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/service/preset"
)

// PresetHandler serves the mental-state vocabulary, one description per
// level of the scale.
type PresetHandler struct {
	svc preset.Service
}

func NewPresetHandler(svc preset.Service) *PresetHandler {
	return &PresetHandler{svc: svc}
}

// GET /api/v1/presets
func (h *PresetHandler) List(c fiber.Ctx) error {
	rows, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c)
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, p := range rows {
		out = append(out, presetJSON(p))
	}
	return ok(c, out)
}

// GET /api/v1/presets/:level
func (h *PresetHandler) GetByLevel(c fiber.Ctx) error {
	level, err := strconv.Atoi(c.Params("level"))
	if err != nil {
		return badRequest(c, "level must be an integer")
	}
	p, err := h.svc.GetByLevel(c.Context(), level)
	if err != nil {
		switch {
		case errors.Is(err, preset.ErrInvalidLevel):
			return badRequest(c, err.Error())
		case errors.Is(err, preset.ErrNotFound):
			return notFound(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return ok(c, presetJSON(p))
}

func presetJSON(p *repo.MentalStatePreset) fiber.Map {
	return fiber.Map{
		"level":       p.Level,
		"description": p.Description,
	}
}
