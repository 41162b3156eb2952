package refund

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

func TestAmount_Schedule(t *testing.T) {
	booked := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"same day", booked.Add(2 * time.Hour), 90},
		{"day 7 boundary", booked.AddDate(0, 0, 7), 90},
		{"day 8", booked.AddDate(0, 0, 8), 75},
		{"day 14 boundary", booked.AddDate(0, 0, 14), 75},
		{"day 15", booked.AddDate(0, 0, 15), 50},
		{"day 30 boundary", booked.AddDate(0, 0, 30), 50},
		{"day 31", booked.AddDate(0, 0, 31), 20},
		{"a year later", booked.AddDate(1, 0, 0), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(100, booked, tt.now))
		})
	}
}

func TestAmount_RoundsToCents(t *testing.T) {
	booked := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	// 33.33 * 0.9 = 29.997 -> 30.00
	assert.Equal(t, 30.0, Amount(33.33, booked, booked.Add(time.Hour)))
}

type fakeBookings struct {
	rows    map[uuid.UUID]*domain.Booking
	markErr error
}

func (f *fakeBookings) Get(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if b, ok := f.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

func (f *fakeBookings) MarkRefundRequested(_ context.Context, id uuid.UUID, reason string, amount float64) (*domain.Booking, error) {
	if f.markErr != nil {
		return nil, f.markErr
	}
	b := f.rows[id]
	if b.RefundStatus != domain.RefundNone {
		return nil, fmt.Errorf("fake:%w", repository.ErrConflict)
	}
	b.RefundRequested = true
	b.RefundStatus = domain.RefundRequested
	b.RefundReason = reason
	b.RefundAmount = amount
	cp := *b
	return &cp, nil
}

type fakeRefunds struct {
	inserted []*domain.Refund
}

func (f *fakeRefunds) InsertRefund(_ context.Context, r *domain.Refund) error {
	f.inserted = append(f.inserted, r)
	return nil
}

type fakeLedger struct {
	deductions int
	err        error
}

func (f *fakeLedger) DeductBookingPoints(_ context.Context, _, _ uuid.UUID, _ domain.BookingKind, _ string) (*domain.LoyaltyTransaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deductions++
	return &domain.LoyaltyTransaction{}, nil
}

func confirmedBooking(userID uuid.UUID, price float64, age time.Duration, now time.Time) *domain.Booking {
	return &domain.Booking{
		ID:           uuid.New(),
		UserID:       userID,
		Kind:         domain.BookingTour,
		Status:       domain.BookingConfirmed,
		RefundStatus: domain.RefundNone,
		TotalPrice:   price,
		CreatedAt:    now.Add(-age),
	}
}

func newService(bk *fakeBookings, rf *fakeRefunds, led *fakeLedger, now time.Time) *Service {
	s := New(bk, rf, led, nil)
	s.now = func() time.Time { return now }
	return s
}

func TestRequest_HappyPath(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	b := confirmedBooking(userID, 1000, 10*24*time.Hour, now)

	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	rf := &fakeRefunds{}
	led := &fakeLedger{}
	svc := newService(bk, rf, led, now)

	r, err := svc.Request(context.Background(), userID, b.ID, "change of plans")
	require.NoError(t, err)

	// 10 days old: 75% tier.
	assert.Equal(t, 750.0, r.Amount)
	assert.Equal(t, domain.RefundRequested, r.Status)
	assert.Equal(t, "change of plans", r.Reason)

	assert.Equal(t, domain.RefundRequested, bk.rows[b.ID].RefundStatus)
	require.Len(t, rf.inserted, 1)
	assert.Equal(t, 1, led.deductions)
}

func TestRequest_Forbidden(t *testing.T) {
	now := time.Now()
	b := confirmedBooking(uuid.New(), 100, time.Hour, now)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := newService(bk, &fakeRefunds{}, &fakeLedger{}, now)

	_, err := svc.Request(context.Background(), uuid.New(), b.ID, "nope")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequest_NotFound(t *testing.T) {
	svc := newService(&fakeBookings{}, &fakeRefunds{}, &fakeLedger{}, time.Now())

	_, err := svc.Request(context.Background(), uuid.New(), uuid.New(), "x")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRequest_CancelledBookingNotRefundable(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	b := confirmedBooking(userID, 100, time.Hour, now)
	b.Status = domain.BookingCancelled
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := newService(bk, &fakeRefunds{}, &fakeLedger{}, now)

	_, err := svc.Request(context.Background(), userID, b.ID, "x")
	assert.ErrorIs(t, err, ErrNotRefundable)
}

func TestRequest_SecondRequestRejected(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	b := confirmedBooking(userID, 100, time.Hour, now)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	rf := &fakeRefunds{}
	svc := newService(bk, rf, &fakeLedger{}, now)

	_, err := svc.Request(context.Background(), userID, b.ID, "first")
	require.NoError(t, err)

	_, err = svc.Request(context.Background(), userID, b.ID, "second")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.Len(t, rf.inserted, 1)
}

func TestRequest_RacingRequestLosesOnGuard(t *testing.T) {
	// The pre-check passes but the conditional update reports a conflict, as
	// when another request slipped in between.
	now := time.Now()
	userID := uuid.New()
	b := confirmedBooking(userID, 100, time.Hour, now)
	bk := &fakeBookings{
		rows:    map[uuid.UUID]*domain.Booking{b.ID: b},
		markErr: fmt.Errorf("fake:%w", repository.ErrConflict),
	}
	svc := newService(bk, &fakeRefunds{}, &fakeLedger{}, now)

	_, err := svc.Request(context.Background(), userID, b.ID, "x")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestRequest_ClawbackFailureKeepsRefund(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	b := confirmedBooking(userID, 100, time.Hour, now)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	rf := &fakeRefunds{}
	led := &fakeLedger{err: errors.New("insufficient points")}
	svc := newService(bk, rf, led, now)

	r, err := svc.Request(context.Background(), userID, b.ID, "x")
	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Len(t, rf.inserted, 1)
}
