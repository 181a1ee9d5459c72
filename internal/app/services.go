package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medera/medera_backend/config"
	"github.com/medera/medera_backend/internal/repo"
	"github.com/medera/medera_backend/internal/service/appointment"
	"github.com/medera/medera_backend/internal/service/auth"
	"github.com/medera/medera_backend/internal/service/content"
	"github.com/medera/medera_backend/internal/service/doctor"
	"github.com/medera/medera_backend/internal/service/payment"
	"github.com/medera/medera_backend/internal/service/testimonial"
	"github.com/medera/medera_backend/internal/service/user"
	"github.com/medera/medera_backend/pkg/authorize"
	pasetotoken "github.com/medera/medera_backend/pkg/paseto"
	s3pkg "github.com/medera/medera_backend/pkg/s3"
	zarinpalpkg "github.com/medera/medera_backend/pkg/zarinpal"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideDoctorService,
		ProvideAppointmentService,
		ProvideTestimonialService,
		ProvideContentService,
		ProvidePaymentService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz)
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

func ProvideDoctorService(db *repo.Client, store *s3pkg.Client) doctor.Service {
	return doctor.New(db, store)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, cfg *config.Config) appointment.Service {
	return appointment.New(db, nc, cfg)
}

func ProvideTestimonialService(db *repo.Client) testimonial.Service {
	return testimonial.New(db)
}

func ProvideContentService(db *repo.Client) content.Service {
	return content.New(db)
}

func ProvidePaymentService(
	db *repo.Client,
	zp *zarinpalpkg.Client,
	appts appointment.Service,
	cfg *config.Config,
) payment.Service {
	return payment.New(db, zp, appts, cfg)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
