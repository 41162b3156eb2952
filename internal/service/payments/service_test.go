package payments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

type fakeBookings struct {
	rows map[uuid.UUID]*domain.Booking
}

func (f *fakeBookings) Get(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if b, ok := f.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

type fakePayments struct {
	rows map[uuid.UUID]*domain.Payment
}

func newFakePayments() *fakePayments {
	return &fakePayments{rows: map[uuid.UUID]*domain.Payment{}}
}

func (f *fakePayments) InsertInstallments(_ context.Context, plans []domain.Payment) error {
	for _, p := range plans {
		cp := p
		f.rows[p.ID] = &cp
	}
	return nil
}

func (f *fakePayments) PlanByBooking(_ context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	var out []domain.Payment
	for n := 1; n <= len(f.rows); n++ {
		for _, p := range f.rows {
			if p.BookingID == bookingID && p.InstallmentNumber == n {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (f *fakePayments) Get(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	if p, ok := f.rows[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
}

func (f *fakePayments) MarkPaid(_ context.Context, id uuid.UUID, paidAt time.Time) (*domain.Payment, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("fake:%w", repository.ErrNotFound)
	}
	if p.Status == domain.PaymentPaid {
		return nil, fmt.Errorf("fake:%w", repository.ErrConflict)
	}
	p.Status = domain.PaymentPaid
	p.PaidAt = &paidAt
	cp := *p
	return &cp, nil
}

func (f *fakePayments) MarkAllPaid(_ context.Context, bookingID uuid.UUID, paidAt time.Time) (int64, error) {
	var n int64
	for _, p := range f.rows {
		if p.BookingID == bookingID && p.Status != domain.PaymentPaid {
			p.Status = domain.PaymentPaid
			p.PaidAt = &paidAt
			n++
		}
	}
	return n, nil
}

func booked(price float64) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.New(),
		Name:       "Ann",
		Email:      "ann@example.com",
		TotalPrice: price,
		CreatedAt:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreatePlan_SplitsIntoThreeMonthlyInstallments(t *testing.T) {
	b := booked(900)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	fp := newFakePayments()
	svc := New(bk, fp, nil)

	plan, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)
	require.Len(t, plan, 3)

	for i, p := range plan {
		assert.Equal(t, i+1, p.InstallmentNumber)
		assert.Equal(t, 300.0, p.Amount)
		assert.Equal(t, domain.PaymentUnpaid, p.Status)
		assert.Equal(t, b.CreatedAt.AddDate(0, i, 0), p.DueDate)
		assert.True(t, len(p.InvoiceID) == 12 && p.InvoiceID[:4] == "INV-")
	}
}

func TestCreatePlan_RoundsInstallmentAmount(t *testing.T) {
	b := booked(100)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	svc := New(bk, newFakePayments(), nil)

	plan, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 33.33, plan[0].Amount)
}

func TestCreatePlan_IsIdempotent(t *testing.T) {
	b := booked(300)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	fp := newFakePayments()
	svc := New(bk, fp, nil)

	first, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)

	second, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, fp.rows, 3)
}

func TestCreatePlan_UnknownBooking(t *testing.T) {
	svc := New(&fakeBookings{}, newFakePayments(), nil)

	_, err := svc.CreatePlan(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPayInstallment_OnceOnly(t *testing.T) {
	b := booked(300)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	fp := newFakePayments()
	svc := New(bk, fp, nil)

	plan, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)

	p, err := svc.PayInstallment(context.Background(), plan[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, p.Status)
	require.NotNil(t, p.PaidAt)

	_, err = svc.PayInstallment(context.Background(), plan[0].ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestConfirmFullPayment_SettlesOpenInstallments(t *testing.T) {
	b := booked(300)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	fp := newFakePayments()
	svc := New(bk, fp, nil)

	plan, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)

	_, err = svc.PayInstallment(context.Background(), plan[0].ID)
	require.NoError(t, err)

	n, err := svc.ConfirmFullPayment(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestInvoice_RequiresPaidInstallment(t *testing.T) {
	b := booked(300)
	bk := &fakeBookings{rows: map[uuid.UUID]*domain.Booking{b.ID: b}}
	fp := newFakePayments()
	svc := New(bk, fp, nil)

	plan, err := svc.CreatePlan(context.Background(), b.ID)
	require.NoError(t, err)

	_, _, _, err = svc.Invoice(context.Background(), plan[0].ID)
	assert.ErrorIs(t, err, ErrInvoiceUnavailable)

	_, err = svc.PayInstallment(context.Background(), plan[0].ID)
	require.NoError(t, err)

	inv, doc, contentType, err := svc.Invoice(context.Background(), plan[0].ID)
	require.NoError(t, err)
	assert.Nil(t, doc)
	assert.Empty(t, contentType)
	assert.Equal(t, plan[0].InvoiceID, inv.InvoiceID)
	assert.Equal(t, "Ann", inv.CustomerName)
	assert.Equal(t, 100.0, inv.Amount)
}
