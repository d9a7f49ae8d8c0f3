package writerepo

import (
	"context"
	"errors"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const advisoryLockSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

const countOverlappingSQL = `
SELECT COUNT(*)
FROM bookings
WHERE property_id = $1
  AND status IN ('pending', 'confirmed')
  AND check_in < $3
  AND check_out > $2
`

const insertBookingSQL = `
INSERT INTO bookings (
	id, property_id, user_id, check_in, check_out, guests,
	contact_phone, contact_email, special_requests,
	total_price_cents, status, payment_status, payment_id,
	confirmed, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6,
	$7, $8, $9,
	$10, $11, $12, $13,
	$11 = 'confirmed', $14, $15
)
`

// Create checks availability and inserts inside the caller's transaction.
// The per-property advisory lock serializes concurrent creations so the
// overlap check cannot race; the exclusion constraint on the table is the
// backstop for writers that bypass this path.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if _, err := dbtx.Exec(ctx, advisoryLockSQL, b.PropertyID()); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to acquire property lock", err)
	}

	var overlapping int64
	row := dbtx.QueryRow(ctx, countOverlappingSQL,
		b.PropertyID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
	)
	if err := row.Scan(&overlapping); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to check availability", err)
	}
	if overlapping > 0 {
		return uuid.Nil, infra.WrapRepoErr("stay period overlaps an existing booking", nil, infra.KindConflict)
	}

	_, err := dbtx.Exec(ctx, insertBookingSQL,
		b.ID(),
		b.PropertyID(),
		b.UserID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guests(),
		b.Contact().Phone(),
		b.Contact().Email(),
		b.Contact().SpecialRequests(),
		b.TotalPriceCents(),
		b.Status().String(),
		string(b.PaymentStatus()),
		b.PaymentID(),
		pgconv.TimestamptzToPgtype(b.CreatedAt()),
		pgconv.TimestamptzToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				return uuid.Nil, infra.WrapRepoErr("stay period overlaps an existing booking", err, infra.KindConflict)
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("duplicate booking", err, infra.KindDuplicateKey)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return b.ID(), nil
}

const updateStatusSQL = `
UPDATE bookings
SET status = $3,
    confirmed = ($3 = 'confirmed'),
    refund_amount_cents = COALESCE($4, refund_amount_cents),
    cancellation_fee_cents = COALESCE($5, cancellation_fee_cents),
    updated_at = $6
WHERE id = $1 AND status = $2
`

// UpdateStatus is a compare-and-swap on the previously observed status. Zero
// rows affected means another writer changed the booking first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, params shared.UpdateStatusParams) error {
	tag, err := dbtx.Exec(ctx, updateStatusSQL,
		params.ID,
		params.PreviousStatus.String(),
		params.NewStatus.String(),
		pgconv.Int8PtrToPgtype(params.RefundAmountCents),
		pgconv.Int8PtrToPgtype(params.CancellationFeeCents),
		pgconv.TimestamptzToPgtype(params.UpdatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
