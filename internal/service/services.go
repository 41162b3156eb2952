package service

import (
	"log/slog"

	redisx "github.com/okatsune/voyago/internal/redis"
	postgres "github.com/okatsune/voyago/internal/repository/postgres"
	redis "github.com/okatsune/voyago/internal/repository/redis"
	"github.com/okatsune/voyago/internal/service/booking"
	"github.com/okatsune/voyago/internal/service/composer"
	"github.com/okatsune/voyago/internal/service/inventory"
	"github.com/okatsune/voyago/internal/service/loyalty"
	"github.com/okatsune/voyago/internal/service/payments"
	"github.com/okatsune/voyago/internal/service/query"
	"github.com/okatsune/voyago/internal/service/refund"
	"github.com/okatsune/voyago/internal/uow"
)

type Services struct {
	Composer *composer.Service
	Booking  *booking.Service
	Loyalty  *loyalty.Service
	Refund   *refund.Service
	Payments *payments.Service
	Query    *query.Service
}

type Config struct {
	Query query.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redisx.BookingsPubSub,
	logger *slog.Logger,
	cfg Config,
) *Services {
	u := uow.NewUoW(store)

	loyaltySvc := loyalty.New(store, u, cache)
	coordinator := inventory.NewCoordinator(store.Inventory())

	return &Services{
		Composer: composer.New(store.Catalog(), store.Packages()),
		Booking: booking.New(
			store.Catalog(),
			store.Packages(),
			store.Bookings(),
			coordinator,
			loyaltySvc,
			cache,
			pubsub,
			logger,
		),
		Loyalty:  loyaltySvc,
		Refund:   refund.New(store.Bookings(), store.Payments(), loyaltySvc, logger),
		Payments: payments.New(store.Bookings(), store.Payments(), nil),
		Query:    query.New(store, cache, cfg.Query),
	}
}
