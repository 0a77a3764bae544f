package patientmap

import (
	"context"

	"entgo.io/ent"
	"github.com/google/uuid"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/pkg/cache"
)

// CacheInvalidationHook drops the cached payload after any successful
// worksheet mutation, so saves that bypass the service layer (migrations,
// CLI fixes) still invalidate. Register it with repo.Client.Use.
//
// The patient ID is resolved before the mutation runs: update mutations
// carry only the changed fields, and ent forbids old-value reads once the
// mutation has executed.
func CacheInvalidationHook(store cache.Store) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			var key string
			switch mut := m.(type) {
			case *repo.AwarenessMapMutation:
				if pid, ok := awarenessPatientID(ctx, mut); ok {
					key = payloadKey(KindAwareness, pid)
				}
			case *repo.NightmareMapMutation:
				if pid, ok := nightmarePatientID(ctx, mut); ok {
					key = payloadKey(KindNightmare, pid)
				}
			}

			v, err := next.Mutate(ctx, m)
			if err != nil {
				return v, err
			}

			if key != "" {
				store.Delete(ctx, key)
			}
			return v, nil
		})
	}
}

func awarenessPatientID(ctx context.Context, m *repo.AwarenessMapMutation) (uuid.UUID, bool) {
	if pid, ok := m.PatientID(); ok {
		return pid, true
	}
	// Update mutations carry only the changed fields; fall back to the
	// stored value.
	if pid, err := m.OldPatientID(ctx); err == nil {
		return pid, true
	}
	return uuid.Nil, false
}

func nightmarePatientID(ctx context.Context, m *repo.NightmareMapMutation) (uuid.UUID, bool) {
	if pid, ok := m.PatientID(); ok {
		return pid, true
	}
	if pid, err := m.OldPatientID(ctx); err == nil {
		return pid, true
	}
	return uuid.Nil, false
}
