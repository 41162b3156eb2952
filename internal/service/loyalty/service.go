package loyalty

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
	postgres "github.com/okatsune/voyago/internal/repository/postgres"
	redisrepo "github.com/okatsune/voyago/internal/repository/redis"
	"github.com/okatsune/voyago/internal/uow"
)

const (
	statusTTL  = 5 * time.Minute
	earnedLife = 365 * 24 * time.Hour
)

// Service owns the point ledger. Every balance movement writes a ledger entry,
// moves the denormalized balance and recomputes the tier inside one
// transaction, so the balance always equals the running sum of the ledger.
type Service struct {
	store *postgres.Store
	uow   *uow.UoW
	cache *redisrepo.Cache
}

func New(store *postgres.Store, u *uow.UoW, cache *redisrepo.Cache) *Service {
	return &Service{store: store, uow: u, cache: cache}
}

// AwardBookingPoints credits the flat award for a booking kind. Awards are
// flat per kind, never price-proportional.
func (s *Service) AwardBookingPoints(ctx context.Context, userID, bookingID uuid.UUID, kind domain.BookingKind) (*domain.LoyaltyTransaction, error) {
	const op = "service.loyalty.AwardBookingPoints"

	expiry := time.Now().Add(earnedLife)
	txn := &domain.LoyaltyTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		BookingID:   &bookingID,
		Points:      domain.PointsForKind(kind),
		Type:        domain.LoyaltyEarned,
		Description: fmt.Sprintf("Points earned for %s booking", kind),
		ExpiryDate:  &expiry,
		Status:      domain.LoyaltyTxnActive,
	}

	if err := s.apply(ctx, userID, txn); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return txn, nil
}

// Redeem spends points. The balance guard lives in the conditional update, so
// two concurrent redemptions can never both spend the same points.
func (s *Service) Redeem(ctx context.Context, userID uuid.UUID, points int64, description string) (*domain.LoyaltyTransaction, error) {
	const op = "service.loyalty.Redeem"

	if points <= 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidPoints)
	}

	txn := &domain.LoyaltyTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Points:      -points,
		Type:        domain.LoyaltyRedeemed,
		Description: description,
		Status:      domain.LoyaltyTxnRedeemed,
	}

	if err := s.apply(ctx, userID, txn); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return txn, nil
}

// DeductBookingPoints claws back the award for a refunded booking. The caller
// decides what to do when the user already spent the points; this just
// reports ErrInsufficientPoints.
func (s *Service) DeductBookingPoints(ctx context.Context, userID, bookingID uuid.UUID, kind domain.BookingKind, reason string) (*domain.LoyaltyTransaction, error) {
	const op = "service.loyalty.DeductBookingPoints"

	txn := &domain.LoyaltyTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		BookingID:   &bookingID,
		Points:      -domain.PointsForKind(kind),
		Type:        domain.LoyaltyAdjustment,
		Description: reason,
		Status:      domain.LoyaltyTxnActive,
	}

	if err := s.apply(ctx, userID, txn); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return txn, nil
}

// apply writes the ledger entry, moves the balance and refreshes the tier in
// one transaction. The ledger entry goes first: the balance is derived state.
func (s *Service) apply(ctx context.Context, userID uuid.UUID, txn *domain.LoyaltyTransaction) error {
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgres.DB, after func(uow.AfterCommit)) error {
		loy := s.store.Loyalty().With(tx)

		if err := loy.AppendTxn(ctx, txn); err != nil {
			return err
		}

		balance, err := loy.ApplyDelta(ctx, userID, txn.Points)
		if err != nil {
			return err
		}

		if err := loy.SetTier(ctx, userID, domain.TierForPoints(balance)); err != nil {
			return err
		}

		if s.cache != nil {
			after(func(ctx context.Context) {
				_ = s.cache.InvalidateLoyalty(ctx, userID)
			})
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientPoints):
			return ErrInsufficientPoints
		case errors.Is(err, repository.ErrNotFound):
			return ErrUserNotFound
		default:
			return err
		}
	}

	return nil
}

// Status returns the balance, current tier and distance to the next tier.
// Served from the cache; any balance movement invalidates it.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyStatus, error) {
	const op = "service.loyalty.Status"

	load := func(ctx context.Context) (*domain.LoyaltyStatus, error) {
		u, err := s.store.Loyalty().GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}

		return &domain.LoyaltyStatus{
			Points:           u.LoyaltyPoints,
			Tier:             domain.TierForPoints(u.LoyaltyPoints),
			NextTier:         string(domain.NextTier(domain.TierForPoints(u.LoyaltyPoints))),
			PointsToNextTier: domain.PointsToNextTier(u.LoyaltyPoints),
		}, nil
	}

	var (
		st  *domain.LoyaltyStatus
		err error
	)
	if s.cache != nil {
		st, err = redisrepo.GetOrSetJSON(ctx, s.cache, redisrepo.KeyLoyaltyStatus(userID), statusTTL, load)
	} else {
		st, err = load(ctx)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return st, nil
}

func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]domain.LoyaltyTransaction, error) {
	const op = "service.loyalty.History"

	out, err := s.store.Loyalty().History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}
