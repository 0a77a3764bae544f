package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mobiusclinic/clinica_backend/config"
	"github.com/mobiusclinic/clinica_backend/internal/api/http/handler"
	"github.com/mobiusclinic/clinica_backend/internal/api/http/middleware"
	"github.com/mobiusclinic/clinica_backend/internal/service/auth"
	"github.com/mobiusclinic/clinica_backend/internal/service/compound"
	"github.com/mobiusclinic/clinica_backend/internal/service/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/service/patientmap"
	"github.com/mobiusclinic/clinica_backend/internal/service/preset"
	"github.com/mobiusclinic/clinica_backend/internal/service/profile"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
	pasetotoken "github.com/mobiusclinic/clinica_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	Auth        authorize.IAuthorization
	AuthSvc     auth.Service
	ProfileSvc  profile.Service
	MentalSvc   mentalstate.Service
	MapSvc      patientmap.Service
	CompoundSvc compound.Service
	PresetSvc   preset.Service
	PasetoMgr   *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.ProfileSvc, r.p.MentalSvc, r.p.MapSvc, r.p.CompoundSvc)
	doctorH := handler.NewDoctorHandler(r.p.ProfileSvc, r.p.MentalSvc, r.p.MapSvc, r.p.CompoundSvc)
	presetH := handler.NewPresetHandler(r.p.PresetSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerMeRoutes(api, patientH, authRequired, requirePerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, requirePerm)
	r.registerPresetRoutes(api, presetH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
