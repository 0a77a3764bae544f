package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mobiusclinic/clinica_backend/config"
	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/service/auth"
	"github.com/mobiusclinic/clinica_backend/internal/service/compound"
	"github.com/mobiusclinic/clinica_backend/internal/service/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/service/patientmap"
	"github.com/mobiusclinic/clinica_backend/internal/service/preset"
	"github.com/mobiusclinic/clinica_backend/internal/service/profile"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
	"github.com/mobiusclinic/clinica_backend/pkg/cache"
	pasetotoken "github.com/mobiusclinic/clinica_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePresetService,
		ProvideMentalStateService,
		ProvidePatientMapService,
		ProvideCompoundService,
		ProvideProfileService,
		ProvideAuthService,
		ProvidePasetoManager,
	),
)

func ProvidePresetService(db *repo.Client) preset.Service {
	return preset.New(db)
}

func ProvideMentalStateService(db *repo.Client, presets preset.Service) mentalstate.Service {
	return mentalstate.New(db, presets)
}

func ProvidePatientMapService(db *repo.Client, store cache.Store, cfg *config.Config) patientmap.Service {
	return patientmap.New(db, store, MapPayloadTTL(cfg))
}

func ProvideCompoundService(db *repo.Client) compound.Service {
	return compound.New(db)
}

func ProvideProfileService(db *repo.Client, mental mentalstate.Service) profile.Service {
	return profile.New(db, mental)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, authz, cfg)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
