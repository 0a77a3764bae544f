package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/service/compound"
	"github.com/mobiusclinic/clinica_backend/internal/service/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/service/patientmap"
	"github.com/mobiusclinic/clinica_backend/internal/service/profile"
	pasetotoken "github.com/mobiusclinic/clinica_backend/pkg/paseto"
)

// DoctorHandler serves the doctor-side surface: the doctor's own profile
// and full read/write access to patient records.
type DoctorHandler struct {
	profiles  profile.Service
	mental    mentalstate.Service
	maps      patientmap.Service
	compounds compound.Service
}

func NewDoctorHandler(
	profiles profile.Service,
	mental mentalstate.Service,
	maps patientmap.Service,
	compounds compound.Service,
) *DoctorHandler {
	return &DoctorHandler{
		profiles:  profiles,
		mental:    mental,
		maps:      maps,
		compounds: compounds,
	}
}

func (h *DoctorHandler) currentDoctor(c fiber.Ctx) (*repo.Doctor, error) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	d, err := h.profiles.GetDoctorByUser(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrDoctorNotFound) {
			return nil, fiber.ErrForbidden
		}
		return nil, err
	}
	return d, nil
}

// patientByParam resolves the :patientID path parameter.
func (h *DoctorHandler) patientByParam(c fiber.Ctx) (*repo.Patient, error) {
	id, err := uuid.Parse(c.Params("patientID"))
	if err != nil {
		return nil, badRequest(c, "invalid patient id")
	}
	p, err := h.profiles.GetPatient(c.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrPatientNotFound) {
			return nil, notFound(c, "patient not found")
		}
		return nil, internalError(c)
	}
	return p, nil
}

// GET /api/v1/doctor/me
func (h *DoctorHandler) GetProfile(c fiber.Ctx) error {
	d, err := h.currentDoctor(c)
	if err != nil {
		return err
	}
	return ok(c, doctorJSON(d))
}

// PATCH /api/v1/doctor/me
func (h *DoctorHandler) UpdateProfile(c fiber.Ctx) error {
	d, err := h.currentDoctor(c)
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

	out, err := h.profiles.UpdateDoctorProfile(c.Context(), d, profile.UpdateProfileRequest{
		FullName:  body.FullName,
		Nickname:  body.Nickname,
		Telegram:  body.Telegram,
		AvatarKey: body.AvatarKey,
	})
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, doctorJSON(out))
}

// GET /api/v1/doctor/patients
func (h *DoctorHandler) ListPatients(c fiber.Ctx) error {
	rows, err := h.profiles.ListPatients(c.Context())
	if err != nil {
		return internalError(c)
	}
	out := make([]fiber.Map, 0, len(rows))
	for _, p := range rows {
		out = append(out, patientJSON(p))
	}
	return ok(c, out)
}

// GET /api/v1/doctor/patients/:patientID
func (h *DoctorHandler) GetPatient(c fiber.Ctx) error {
	p, err := h.patientByParam(c)
	if p == nil {
		return err
	}
	ms, err := h.mental.GetOrCreate(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	resp := patientJSON(p)
	resp["mental_state"] = mentalStateJSON(ms)
	return ok(c, resp)
}

// PATCH /api/v1/doctor/patients/:patientID
func (h *DoctorHandler) UpdatePatient(c fiber.Ctx) error {
	p, err := h.patientByParam(c)
	if p == nil {
		return err
	}

	var body struct {
		FullName            string `json:"full_name"`
		Nickname            string `json:"nickname"`
		Telegram            string `json:"telegram"`
		ChemistryLevel      int    `json:"chemistry_level"`
		MechanicsLevel      int    `json:"mechanics_level"`
		SocialSkillsLevel   int    `json:"social_skills_level"`
		PhysicalSkillsLevel int    `json:"physical_skills_level"`
		BonusLevel          string `json:"bonus_level"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	out, err := h.profiles.UpdatePatientByDoctor(c.Context(), p, profile.DoctorPatientUpdate{
		FullName:            body.FullName,
		Nickname:            body.Nickname,
		Telegram:            body.Telegram,
		ChemistryLevel:      body.ChemistryLevel,
		MechanicsLevel:      body.MechanicsLevel,
		SocialSkillsLevel:   body.SocialSkillsLevel,
		PhysicalSkillsLevel: body.PhysicalSkillsLevel,
		BonusLevel:          body.BonusLevel,
	})
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, patientJSON(out))
}

// PATCH /api/v1/doctor/patients/:patientID/mental
func (h *DoctorHandler) UpdateMentalDescription(c fiber.Ctx) error {
	p, err := h.patientByParam(c)
	if p == nil {
		return err
	}

	var body struct {
		Description string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ms, err := h.profiles.UpdateMentalDescription(c.Context(), p, body.Description)
	if err != nil {
		return internalError(c)
	}
	return ok(c, mentalStateJSON(ms))
}

// GET /api/v1/doctor/patients/:patientID/awareness
func (h *DoctorHandler) GetAwareness(c fiber.Ctx) error {
	return h.getMap(c, patientmap.KindAwareness)
}

// GET /api/v1/doctor/patients/:patientID/nightmare
func (h *DoctorHandler) GetNightmare(c fiber.Ctx) error {
	return h.getMap(c, patientmap.KindNightmare)
}

func (h *DoctorHandler) getMap(c fiber.Ctx, kind patientmap.Kind) error {
	p, err := h.patientByParam(c)
	if p == nil {
		return err
	}
	payload, err := h.maps.GetPayload(c.Context(), kind, p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, payload)
}

// PUT /api/v1/doctor/patients/:patientID/awareness
func (h *DoctorHandler) UpdateAwareness(c fiber.Ctx) error {
	return h.updateMap(c, patientmap.KindAwareness)
}

// PUT /api/v1/doctor/patients/:patientID/nightmare
func (h *DoctorHandler) UpdateNightmare(c fiber.Ctx) error {
	return h.updateMap(c, patientmap.KindNightmare)
}

func (h *DoctorHandler) updateMap(c fiber.Ctx, kind patientmap.Kind) error {
	p, err := h.patientByParam(c)
	if p == nil {
		return err
	}

	var fields map[string]string
	if err := c.Bind().JSON(&fields); err != nil {
		return badRequest(c, "invalid request body")
	}

	rec, err := h.maps.GetOrCreate(c.Context(), kind, p)
	if err != nil {
		return internalError(c)
	}
	rec, _, err = h.maps.Update(c.Context(), kind, rec, fields)
	if err != nil {
		if errors.Is(err, patientmap.ErrUnknownKind) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, rec.Fields)
}

// GET /api/v1/doctor/recipes
func (h *DoctorHandler) ListRecipes(c fiber.Ctx) error {
	return h.listAll(c, compound.KindChemical)
}

// GET /api/v1/doctor/devices
func (h *DoctorHandler) ListDevices(c fiber.Ctx) error {
	return h.listAll(c, compound.KindMechanical)
}

func (h *DoctorHandler) listAll(c fiber.Ctx, kind compound.Kind) error {
	entries, err := h.compounds.ListAll(c.Context(), kind)
	if err != nil {
		return internalError(c)
	}
	out := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		m := entryJSON(e)
		m["owner_name"] = e.OwnerName
		out = append(out, m)
	}
	return ok(c, out)
}

// POST /api/v1/doctor/patients/:patientID/recipes
func (h *DoctorHandler) CreateRecipe(c fiber.Ctx) error {
	return h.createForPatient(c, compound.KindChemical)
}

// POST /api/v1/doctor/patients/:patientID/devices
func (h *DoctorHandler) CreateDevice(c fiber.Ctx) error {
	return h.createForPatient(c, compound.KindMechanical)
}

func (h *DoctorHandler) createForPatient(c fiber.Ctx, kind compound.Kind) error {
	d, err := h.currentDoctor(c)
	if err != nil {
		return err
	}
	p, err := h.patientByParam(c)
	if p == nil {
		return err
	}

	in, err := bindCompoundInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	entry, err := h.compounds.CreateForDoctor(c.Context(), kind, d, p, *in)
	if err != nil {
		return mapCompoundError(c, err)
	}
	return created(c, entryJSON(entry))
}

func doctorJSON(d *repo.Doctor) fiber.Map {
	return fiber.Map{
		"id":         d.ID,
		"full_name":  d.FullName,
		"nickname":   d.Nickname,
		"telegram":   d.Telegram,
		"avatar_key": d.AvatarKey,
		"created_at": d.CreatedAt,
	}
}
