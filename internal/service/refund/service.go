package refund

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

type Bookings interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	MarkRefundRequested(ctx context.Context, id uuid.UUID, reason string, amount float64) (*domain.Booking, error)
}

type Refunds interface {
	InsertRefund(ctx context.Context, r *domain.Refund) error
}

type Ledger interface {
	DeductBookingPoints(ctx context.Context, userID, bookingID uuid.UUID, kind domain.BookingKind, reason string) (*domain.LoyaltyTransaction, error)
}

// Service handles refund requests. The amount depends on booking age alone,
// never on the travel date.
type Service struct {
	bookings Bookings
	refunds  Refunds
	ledger   Ledger
	logger   *slog.Logger
	now      func() time.Time
}

func New(bookings Bookings, refunds Refunds, ledger Ledger, logger *slog.Logger) *Service {
	return &Service{
		bookings: bookings,
		refunds:  refunds,
		ledger:   ledger,
		logger:   logger,
		now:      time.Now,
	}
}

// Request opens a refund for a confirmed booking owned by userID. The
// refund_status guard on the booking row makes the request single-shot even
// under concurrent submissions.
//
// The loyalty clawback at the end is best effort: a user who already spent
// the points still gets the refund, and the shortfall is logged for manual
// follow-up rather than blocking the request.
func (s *Service) Request(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*domain.Refund, error) {
	const op = "service.refund.Request"

	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if b.UserID != userID {
		return nil, fmt.Errorf("%s:%w", op, ErrForbidden)
	}
	if b.Status != domain.BookingConfirmed {
		return nil, fmt.Errorf("%s:%w", op, ErrNotRefundable)
	}
	if b.RefundStatus != domain.RefundNone {
		return nil, fmt.Errorf("%s:%w", op, ErrAlreadyProcessed)
	}

	amount := Amount(b.TotalPrice, b.CreatedAt, s.now())

	b, err = s.bookings.MarkRefundRequested(ctx, bookingID, reason, amount)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, ErrAlreadyProcessed)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	r := &domain.Refund{
		ID:        uuid.New(),
		BookingID: b.ID,
		UserID:    b.UserID,
		Amount:    amount,
		Reason:    reason,
		Status:    domain.RefundRequested,
	}
	if err := s.refunds.InsertRefund(ctx, r); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if _, err := s.ledger.DeductBookingPoints(ctx, userID, b.ID, b.Kind,
		fmt.Sprintf("Points deducted for refund of %s booking", b.Kind)); err != nil {
		s.log().WarnContext(ctx, "loyalty clawback failed, refund kept",
			"booking_id", b.ID, "user_id", userID, "error", err)
	}

	return r, nil
}

// Amount computes the refundable share of the price from the booking's age:
// 90% within 7 days of booking, 75% within 14, 50% within 30, 20% after.
// Age is counted in whole elapsed days.
func Amount(totalPrice float64, bookedAt, now time.Time) float64 {
	days := math.Floor(now.Sub(bookedAt).Hours() / 24)

	var pct float64
	switch {
	case days <= 7:
		pct = 0.90
	case days <= 14:
		pct = 0.75
	case days <= 30:
		pct = 0.50
	default:
		pct = 0.20
	}

	return math.Round(totalPrice*pct*100) / 100
}

func (s *Service) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
