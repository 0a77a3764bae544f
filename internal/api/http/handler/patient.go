package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/service/compound"
	"github.com/mobiusclinic/clinica_backend/internal/service/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/service/patientmap"
	"github.com/mobiusclinic/clinica_backend/internal/service/profile"
	pasetotoken "github.com/mobiusclinic/clinica_backend/pkg/paseto"
)

// PatientHandler serves the authenticated patient's own records under /me.
type PatientHandler struct {
	profiles  profile.Service
	mental    mentalstate.Service
	maps      patientmap.Service
	compounds compound.Service
}

func NewPatientHandler(
	profiles profile.Service,
	mental mentalstate.Service,
	maps patientmap.Service,
	compounds compound.Service,
) *PatientHandler {
	return &PatientHandler{
		profiles:  profiles,
		mental:    mental,
		maps:      maps,
		compounds: compounds,
	}
}

// currentPatient resolves the patient profile of the authenticated user.
func (h *PatientHandler) currentPatient(c fiber.Ctx) (*repo.Patient, error) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	p, err := h.profiles.GetPatientByUser(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrPatientNotFound) {
			return nil, fiber.ErrForbidden
		}
		return nil, err
	}
	return p, nil
}

// GET /api/v1/me
func (h *PatientHandler) GetProfile(c fiber.Ctx) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}
	return ok(c, patientJSON(p))
}

// PATCH /api/v1/me
func (h *PatientHandler) UpdateProfile(c fiber.Ctx) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}

	var body struct {
		FullName  string  `json:"full_name"`
		Nickname  string  `json:"nickname"`
		Telegram  string  `json:"telegram"`
		AvatarKey *string `json:"avatar_key"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	out, err := h.profiles.UpdatePatientProfile(c.Context(), p, profile.UpdateProfileRequest{
		FullName:  body.FullName,
		Nickname:  body.Nickname,
		Telegram:  body.Telegram,
		AvatarKey: body.AvatarKey,
	})
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, patientJSON(out))
}

// GET /api/v1/me/mental
func (h *PatientHandler) GetMentalState(c fiber.Ctx) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}
	ms, err := h.mental.GetOrCreate(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, mentalStateJSON(ms))
}

// POST /api/v1/me/mental/level
func (h *PatientHandler) ChangeMentalLevel(c fiber.Ctx) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}

	var body struct {
		Action string `json:"action"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var delta int
	switch body.Action {
	case "inc":
		delta = 1
	case "dec":
		delta = -1
	default:
		return badRequest(c, "action must be inc or dec")
	}

	ms, err := h.mental.GetOrCreate(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	ms, err = h.mental.ChangeLevel(c.Context(), ms, delta)
	if err != nil {
		return internalError(c)
	}
	return ok(c, mentalStateJSON(ms))
}

// GET /api/v1/me/awareness
func (h *PatientHandler) GetAwareness(c fiber.Ctx) error {
	return h.getMapPayload(c, patientmap.KindAwareness)
}

// GET /api/v1/me/nightmare
func (h *PatientHandler) GetNightmare(c fiber.Ctx) error {
	return h.getMapPayload(c, patientmap.KindNightmare)
}

func (h *PatientHandler) getMapPayload(c fiber.Ctx, kind patientmap.Kind) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}
	payload, err := h.maps.GetPayload(c.Context(), kind, p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, payload)
}

// GET /api/v1/me/recipes
func (h *PatientHandler) ListRecipes(c fiber.Ctx) error {
	return h.listCompounds(c, compound.KindChemical)
}

// GET /api/v1/me/devices
func (h *PatientHandler) ListDevices(c fiber.Ctx) error {
	return h.listCompounds(c, compound.KindMechanical)
}

func (h *PatientHandler) listCompounds(c fiber.Ctx, kind compound.Kind) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}
	entries, err := h.compounds.ListForPatient(c.Context(), kind, p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, entriesJSON(entries))
}

// POST /api/v1/me/recipes
func (h *PatientHandler) CreateRecipe(c fiber.Ctx) error {
	return h.createCompound(c, compound.KindChemical)
}

// POST /api/v1/me/devices
func (h *PatientHandler) CreateDevice(c fiber.Ctx) error {
	return h.createCompound(c, compound.KindMechanical)
}

func (h *PatientHandler) createCompound(c fiber.Ctx, kind compound.Kind) error {
	p, err := h.currentPatient(c)
	if err != nil {
		return err
	}

	in, err := bindCompoundInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	entry, err := h.compounds.CreateForPatient(c.Context(), kind, p, *in)
	if err != nil {
		return mapCompoundError(c, err)
	}
	return created(c, entryJSON(entry))
}

// ---------------------------------------------------------------------------
// Shared serialization
// ---------------------------------------------------------------------------

type compoundBody struct {
	Property1       string `json:"property_1"`
	Property2       string `json:"property_2"`
	Property3       string `json:"property_3"`
	DurationSeconds int64  `json:"duration_seconds"`
	ExtraProperty   string `json:"extra_property"`
}

func bindCompoundInput(c fiber.Ctx) (*compound.CreateInput, error) {
	var body compoundBody
	if err := c.Bind().JSON(&body); err != nil {
		return nil, errors.New("invalid request body")
	}
	return &compound.CreateInput{
		Property1:     body.Property1,
		Property2:     body.Property2,
		Property3:     body.Property3,
		Duration:      time.Duration(body.DurationSeconds) * time.Second,
		ExtraProperty: body.ExtraProperty,
	}, nil
}

func patientJSON(p *repo.Patient) fiber.Map {
	return fiber.Map{
		"id":                    p.ID,
		"full_name":             p.FullName,
		"nickname":              p.Nickname,
		"telegram":              p.Telegram,
		"avatar_key":            p.AvatarKey,
		"chemistry_level":       p.ChemistryLevel,
		"mechanics_level":       p.MechanicsLevel,
		"social_skills_level":   p.SocialSkillsLevel,
		"physical_skills_level": p.PhysicalSkillsLevel,
		"bonus_level":           p.BonusLevel,
		"created_at":            p.CreatedAt,
	}
}

func mentalStateJSON(ms *repo.MentalState) fiber.Map {
	return fiber.Map{
		"level":       ms.Level,
		"description": ms.Description,
		"updated_at":  ms.UpdatedAt,
	}
}

func entryJSON(e *compound.Entry) fiber.Map {
	return fiber.Map{
		"id":               e.ID,
		"owner_id":         e.OwnerID,
		"property_1":       e.Property1,
		"property_2":       e.Property2,
		"property_3":       e.Property3,
		"duration_seconds": int64(e.Duration.Seconds()),
		"extra_property":   e.ExtraProperty,
		"author":           compound.AuthorDisplay(e),
		"created_at":       e.CreatedAt,
	}
}

func entriesJSON(entries []*compound.Entry) []fiber.Map {
	out := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON(e))
	}
	return out
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapProfileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrNicknameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, profile.ErrEmptyFullName),
		errors.Is(err, profile.ErrEmptyNickname),
		errors.Is(err, profile.ErrInvalidSkillLevel):
		return badRequest(c, err.Error())
	case errors.Is(err, profile.ErrPatientNotFound),
		errors.Is(err, profile.ErrDoctorNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

func mapCompoundError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, compound.ErrMissingProperty),
		errors.Is(err, compound.ErrNegativeDuration),
		errors.Is(err, compound.ErrNoAuthor),
		errors.Is(err, compound.ErrUnknownKind):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}
