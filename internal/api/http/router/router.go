package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/api/http/handler"
	"github.com/medera/medera_backend/internal/api/http/middleware"
	"github.com/medera/medera_backend/internal/service/appointment"
	"github.com/medera/medera_backend/internal/service/auth"
	"github.com/medera/medera_backend/internal/service/content"
	"github.com/medera/medera_backend/internal/service/doctor"
	"github.com/medera/medera_backend/internal/service/payment"
	"github.com/medera/medera_backend/internal/service/testimonial"
	"github.com/medera/medera_backend/internal/service/user"
	"github.com/medera/medera_backend/pkg/authorize"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	UserSvc        user.Service
	AuthSvc        auth.Service
	DoctorSvc      doctor.Service
	AppointmentSvc appointment.Service
	TestimonialSvc testimonial.Service
	ContentSvc     content.Service
	PaymentSvc     payment.Service
	PasetoMgr      *pasetotoken.Manager
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
	authOptional := middleware.AuthOptional(r.p.PasetoMgr, r.p.Redis)

	// Permission helpers
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	selfOrPerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfOrPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	testimonialH := handler.NewTestimonialHandler(r.p.TestimonialSvc)
	contentH := handler.NewContentHandler(r.p.ContentSvc)
	paymentH := handler.NewPaymentHandler(r.p.PaymentSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm, selfOrPerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, paymentH, authRequired, authOptional, requirePerm)
	r.registerTestimonialRoutes(api, testimonialH, authRequired, requirePerm)
	r.registerContentRoutes(api, contentH, authRequired, requirePerm)
	r.registerPaymentRoutes(api, paymentH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
