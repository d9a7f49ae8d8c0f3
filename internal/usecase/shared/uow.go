package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command-side reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	History() HistoryRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type PropertySnapshot struct {
	ID               uuid.UUID
	Title            string
	City             string
	PropertyType     string
	NightlyRateCents int64
	MaxGuests        int
}

type BookingSnapshot struct {
	ID                   uuid.UUID
	PropertyID           uuid.UUID
	UserID               uuid.UUID
	CheckIn              time.Time
	CheckOut             time.Time
	Guests               int
	ContactPhone         string
	ContactEmail         string
	SpecialRequests      string
	TotalPriceCents      int64
	Status               string
	PaymentStatus        string
	PaymentID            string
	RefundAmountCents    *int64
	CancellationFeeCents *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ToDomain rehydrates the aggregate for transition validation.
func (s *BookingSnapshot) ToDomain() *booking.Booking {
	return booking.ReconstructBooking(
		s.ID,
		s.PropertyID,
		s.UserID,
		booking.ReconstructStayPeriod(s.CheckIn, s.CheckOut),
		s.Guests,
		booking.NewContactInfo(s.ContactPhone, s.ContactEmail, s.SpecialRequests),
		s.TotalPriceCents,
		booking.Status(s.Status),
		booking.PaymentStatus(s.PaymentStatus),
		s.PaymentID,
		s.RefundAmountCents,
		s.CancellationFeeCents,
		s.CreatedAt,
		s.UpdatedAt,
	)
}

type BookingRepository interface {
	// Create serializes with other creations for the same property and fails
	// with a conflict when the stay period overlaps a pending or confirmed
	// booking.
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus is a compare-and-swap conditioned on the previously read
	// status; zero rows affected surfaces as a conflict.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, params UpdateStatusParams) error
}

type UpdateStatusParams struct {
	ID                   uuid.UUID
	PreviousStatus       booking.Status
	NewStatus            booking.Status
	RefundAmountCents    *int64
	CancellationFeeCents *int64
	UpdatedAt            time.Time
}

type HistoryRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, entry HistoryEntry) error
}

// HistoryEntry is append-only; entries are never mutated or deleted.
type HistoryEntry struct {
	BookingID         uuid.UUID
	OldStatus         string
	NewStatus         string
	ChangedBy         uuid.UUID
	Reason            string
	RefundAmountCents *int64
	DeductionCents    *int64
	CreatedAt         time.Time
}

type NotificationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, record NotificationRecord) error
}

type NotificationRecord struct {
	UserID    uuid.UUID
	BookingID uuid.UUID
	Type      string
	Title     string
	Message   string
	CreatedAt time.Time
}
