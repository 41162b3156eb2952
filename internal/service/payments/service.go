package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okatsune/voyago/internal/domain"
	"github.com/okatsune/voyago/internal/repository"
)

const installments = 3

type Bookings interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type Payments interface {
	InsertInstallments(ctx context.Context, plans []domain.Payment) error
	PlanByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*domain.Payment, error)
	MarkAllPaid(ctx context.Context, bookingID uuid.UUID, paidAt time.Time) (int64, error)
}

// InvoiceSnapshot is the data handed to an invoice renderer. It carries
// everything a document needs so renderers stay stateless.
type InvoiceSnapshot struct {
	InvoiceID         string    `json:"invoice_id"`
	BookingID         uuid.UUID `json:"booking"`
	CustomerName      string    `json:"customer_name"`
	CustomerEmail     string    `json:"customer_email"`
	InstallmentNumber int       `json:"installment_number"`
	Amount            float64   `json:"amount"`
	PaidAt            time.Time `json:"paid_at"`
}

// Renderer turns an invoice snapshot into a downloadable document. The
// returned content type accompanies the bytes.
type Renderer interface {
	Render(ctx context.Context, inv InvoiceSnapshot) ([]byte, string, error)
}

// Service manages installment plans: each booking's price splits into three
// monthly installments, each payable once.
type Service struct {
	bookings Bookings
	payments Payments
	renderer Renderer
	now      func() time.Time
}

// New builds the service. renderer may be nil, in which case invoices are
// served as their raw snapshot.
func New(bookings Bookings, payments Payments, renderer Renderer) *Service {
	return &Service{
		bookings: bookings,
		payments: payments,
		renderer: renderer,
		now:      time.Now,
	}
}

// CreatePlan splits the booking total into three monthly installments due
// from the booking date. Calling it again for the same booking returns the
// existing plan unchanged.
func (s *Service) CreatePlan(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	const op = "service.payments.CreatePlan"

	b, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	existing, err := s.payments.PlanByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	amount := math.Round(b.TotalPrice/installments*100) / 100

	plan := make([]domain.Payment, 0, installments)
	for i := 1; i <= installments; i++ {
		plan = append(plan, domain.Payment{
			ID:                uuid.New(),
			BookingID:         b.ID,
			InvoiceID:         invoiceID(),
			InstallmentNumber: i,
			Amount:            amount,
			DueDate:           b.CreatedAt.AddDate(0, i-1, 0),
			Status:            domain.PaymentUnpaid,
		})
	}

	if err := s.payments.InsertInstallments(ctx, plan); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return plan, nil
}

func (s *Service) Plan(ctx context.Context, bookingID uuid.UUID) ([]domain.Payment, error) {
	const op = "service.payments.Plan"

	out, err := s.payments.PlanByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// PayInstallment settles one installment. The paid guard on the row rejects a
// double payment.
func (s *Service) PayInstallment(ctx context.Context, paymentID uuid.UUID) (*domain.Payment, error) {
	const op = "service.payments.PayInstallment"

	p, err := s.payments.MarkPaid(ctx, paymentID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%s:%w", op, ErrPaymentNotFound)
		case errors.Is(err, repository.ErrConflict):
			return nil, fmt.Errorf("%s:%w", op, ErrAlreadyPaid)
		default:
			return nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	return p, nil
}

// ConfirmFullPayment settles every open installment of a booking at once and
// returns how many were flipped.
func (s *Service) ConfirmFullPayment(ctx context.Context, bookingID uuid.UUID) (int64, error) {
	const op = "service.payments.ConfirmFullPayment"

	if _, err := s.bookings.Get(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("%s:%w", op, ErrBookingNotFound)
		}
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	n, err := s.payments.MarkAllPaid(ctx, bookingID, s.now())
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return n, nil
}

// Invoice builds the snapshot for a paid installment and renders it when a
// renderer is configured. Callers get nil bytes and an empty content type
// when no renderer is wired; the snapshot is still usable as JSON.
func (s *Service) Invoice(ctx context.Context, paymentID uuid.UUID) (*InvoiceSnapshot, []byte, string, error) {
	const op = "service.payments.Invoice"

	p, err := s.payments.Get(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, "", fmt.Errorf("%s:%w", op, ErrPaymentNotFound)
		}
		return nil, nil, "", fmt.Errorf("%s:%w", op, err)
	}

	if p.Status != domain.PaymentPaid || p.PaidAt == nil {
		return nil, nil, "", fmt.Errorf("%s:%w", op, ErrInvoiceUnavailable)
	}

	b, err := s.bookings.Get(ctx, p.BookingID)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%s:%w", op, err)
	}

	inv := &InvoiceSnapshot{
		InvoiceID:         p.InvoiceID,
		BookingID:         b.ID,
		CustomerName:      b.Name,
		CustomerEmail:     b.Email,
		InstallmentNumber: p.InstallmentNumber,
		Amount:            p.Amount,
		PaidAt:            *p.PaidAt,
	}

	if s.renderer == nil {
		return inv, nil, "", nil
	}

	doc, contentType, err := s.renderer.Render(ctx, *inv)
	if err != nil {
		return nil, nil, "", fmt.Errorf("%s:%w", op, err)
	}

	return inv, doc, contentType, nil
}

func invoiceID() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
