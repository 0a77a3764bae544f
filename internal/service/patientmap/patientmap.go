package patientmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	entawareness "github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	entnightmare "github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/pkg/cache"
)

// Kind selects which of the two worksheets an operation targets.
type Kind string

const (
	KindAwareness Kind = "awareness"
	KindNightmare Kind = "nightmare"
)

var ErrUnknownKind = errors.New("unknown map kind")

// DefaultPayloadTTL bounds staleness of cached payloads when a write
// bypasses delete-on-write.
const DefaultPayloadTTL = 5 * time.Minute

// fieldNames is the full set of writable worksheet fields. Update ignores
// everything else and treats a missing field as "".
var fieldNames = []string{
	"property_1_condition", "property_1_description",
	"property_2_condition", "property_2_description",
	"property_3_condition", "property_3_description",
	"property_4_condition", "property_4_description",
	"extra_property_1_description", "extra_property_2_description",
}

// Record is the kind-neutral view of one worksheet row.
type Record struct {
	ID        uuid.UUID
	PatientID uuid.UUID
	Fields    map[string]string
	UpdatedAt time.Time
}

// PayloadProperty is one numbered worksheet slot.
type PayloadProperty struct {
	Num         int    `json:"num"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
}

// PayloadExtras carries the two free-form fields.
type PayloadExtras struct {
	Extra1 string `json:"extra1"`
	Extra2 string `json:"extra2"`
}

// Payload is the read shape served to clients and stored in the cache.
type Payload struct {
	Props  []PayloadProperty `json:"props"`
	Extras PayloadExtras     `json:"extras"`
}

type Service interface {
	// GetOrCreate returns the patient's worksheet, creating the empty row
	// on first access.
	GetOrCreate(ctx context.Context, kind Kind, p *repo.Patient) (*Record, error)

	// GetPayload returns the normalized payload, read through the cache.
	// Cache failures fall back to storage.
	GetPayload(ctx context.Context, kind Kind, p *repo.Patient) (*Payload, error)

	// Update writes only fields whose value actually changed, and only
	// when at least one did. A successful write drops the cached payload.
	Update(ctx context.Context, kind Kind, rec *Record, values map[string]string) (*Record, bool, error)
}

type mapService struct {
	db    *repo.Client
	store cache.Store
	ttl   time.Duration
}

func New(db *repo.Client, store cache.Store, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultPayloadTTL
	}
	return &mapService{db: db, store: store, ttl: ttl}
}

// payloadKey is the cache key for one patient's worksheet payload.
func payloadKey(kind Kind, patientID uuid.UUID) string {
	return string(kind) + ":payload:" + patientID.String()
}

// buildPayload normalizes the raw field map; missing fields read as "".
func buildPayload(fields map[string]string) *Payload {
	p := &Payload{Props: make([]PayloadProperty, 0, 4)}
	for i := 1; i <= 4; i++ {
		p.Props = append(p.Props, PayloadProperty{
			Num:         i,
			Condition:   fields[fmt.Sprintf("property_%d_condition", i)],
			Description: fields[fmt.Sprintf("property_%d_description", i)],
		})
	}
	p.Extras.Extra1 = fields["extra_property_1_description"]
	p.Extras.Extra2 = fields["extra_property_2_description"]
	return p
}

// diffFields returns the known fields whose incoming value differs from the
// current one. A field absent from the input counts as "".
func diffFields(current, incoming map[string]string) map[string]string {
	changed := make(map[string]string)
	for _, name := range fieldNames {
		newVal := incoming[name]
		if current[name] != newVal {
			changed[name] = newVal
		}
	}
	return changed
}

func (s *mapService) GetOrCreate(ctx context.Context, kind Kind, p *repo.Patient) (*Record, error) {
	rec, err := s.fetch(ctx, kind, p.ID)
	if err == nil {
		return rec, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get %s map: %w", kind, err)
	}

	rec, err = s.create(ctx, kind, p.ID)
	if err != nil {
		// The unique patient FK means a concurrent first access beat us.
		if repo.IsConstraintError(err) {
			return s.fetchWrapped(ctx, kind, p.ID)
		}
		return nil, fmt.Errorf("create %s map: %w", kind, err)
	}
	return rec, nil
}

func (s *mapService) GetPayload(ctx context.Context, kind Kind, p *repo.Patient) (*Payload, error) {
	key := payloadKey(kind, p.ID)

	if raw, ok := s.store.Get(ctx, key); ok {
		var cached Payload
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
		// Corrupt entry: drop it and rebuild from storage.
		s.store.Delete(ctx, key)
	}

	rec, err := s.GetOrCreate(ctx, kind, p)
	if err != nil {
		return nil, err
	}

	payload := buildPayload(rec.Fields)
	if raw, err := json.Marshal(payload); err == nil {
		s.store.Set(ctx, key, raw, s.ttl)
	}
	return payload, nil
}

func (s *mapService) Update(ctx context.Context, kind Kind, rec *Record, values map[string]string) (*Record, bool, error) {
	changed := diffFields(rec.Fields, values)
	if len(changed) == 0 {
		return rec, false, nil
	}

	out, err := s.applyUpdate(ctx, kind, rec.ID, changed)
	if err != nil {
		return nil, false, fmt.Errorf("update %s map: %w", kind, err)
	}

	s.store.Delete(ctx, payloadKey(kind, rec.PatientID))
	return out, true, nil
}

// ---------------------------------------------------------------------------
// Kind dispatch
// ---------------------------------------------------------------------------

func (s *mapService) fetch(ctx context.Context, kind Kind, patientID uuid.UUID) (*Record, error) {
	switch kind {
	case KindAwareness:
		row, err := s.db.AwarenessMap.Query().
			Where(entawareness.PatientID(patientID)).
			Only(ctx)
		if err != nil {
			return nil, err
		}
		return awarenessRecord(row), nil
	case KindNightmare:
		row, err := s.db.NightmareMap.Query().
			Where(entnightmare.PatientID(patientID)).
			Only(ctx)
		if err != nil {
			return nil, err
		}
		return nightmareRecord(row), nil
	default:
		return nil, ErrUnknownKind
	}
}

func (s *mapService) fetchWrapped(ctx context.Context, kind Kind, patientID uuid.UUID) (*Record, error) {
	rec, err := s.fetch(ctx, kind, patientID)
	if err != nil {
		return nil, fmt.Errorf("refetch %s map: %w", kind, err)
	}
	return rec, nil
}

func (s *mapService) create(ctx context.Context, kind Kind, patientID uuid.UUID) (*Record, error) {
	switch kind {
	case KindAwareness:
		row, err := s.db.AwarenessMap.Create().SetPatientID(patientID).Save(ctx)
		if err != nil {
			return nil, err
		}
		return awarenessRecord(row), nil
	case KindNightmare:
		row, err := s.db.NightmareMap.Create().SetPatientID(patientID).Save(ctx)
		if err != nil {
			return nil, err
		}
		return nightmareRecord(row), nil
	default:
		return nil, ErrUnknownKind
	}
}

func (s *mapService) applyUpdate(ctx context.Context, kind Kind, id uuid.UUID, changed map[string]string) (*Record, error) {
	switch kind {
	case KindAwareness:
		upd := s.db.AwarenessMap.UpdateOneID(id)
		m := upd.Mutation()
		for name, val := range changed {
			if err := m.SetField(name, val); err != nil {
				return nil, err
			}
		}
		row, err := upd.Save(ctx)
		if err != nil {
			return nil, err
		}
		return awarenessRecord(row), nil
	case KindNightmare:
		upd := s.db.NightmareMap.UpdateOneID(id)
		m := upd.Mutation()
		for name, val := range changed {
			if err := m.SetField(name, val); err != nil {
				return nil, err
			}
		}
		row, err := upd.Save(ctx)
		if err != nil {
			return nil, err
		}
		return nightmareRecord(row), nil
	default:
		return nil, ErrUnknownKind
	}
}

func awarenessRecord(row *repo.AwarenessMap) *Record {
	return &Record{
		ID:        row.ID,
		PatientID: row.PatientID,
		UpdatedAt: row.UpdatedAt,
		Fields: map[string]string{
			"property_1_condition":         row.Property1Condition,
			"property_1_description":       row.Property1Description,
			"property_2_condition":         row.Property2Condition,
			"property_2_description":       row.Property2Description,
			"property_3_condition":         row.Property3Condition,
			"property_3_description":       row.Property3Description,
			"property_4_condition":         row.Property4Condition,
			"property_4_description":       row.Property4Description,
			"extra_property_1_description": row.ExtraProperty1Description,
			"extra_property_2_description": row.ExtraProperty2Description,
		},
	}
}

func nightmareRecord(row *repo.NightmareMap) *Record {
	return &Record{
		ID:        row.ID,
		PatientID: row.PatientID,
		UpdatedAt: row.UpdatedAt,
		Fields: map[string]string{
			"property_1_condition":         row.Property1Condition,
			"property_1_description":       row.Property1Description,
			"property_2_condition":         row.Property2Condition,
			"property_2_description":       row.Property2Description,
			"property_3_condition":         row.Property3Condition,
			"property_3_description":       row.Property3Description,
			"property_4_condition":         row.Property4Condition,
			"property_4_description":       row.Property4Description,
			"extra_property_1_description": row.ExtraProperty1Description,
			"extra_property_2_description": row.ExtraProperty2Description,
		},
	}
}
