package readstore

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingByIDSQL = `
SELECT b.id, b.property_id, p.title, b.user_id,
       b.check_in, b.check_out, b.guests,
       b.contact_phone, b.contact_email, b.special_requests,
       b.total_price_cents, b.status, b.payment_status, b.payment_id,
       b.confirmed, b.refund_amount_cents, b.cancellation_fee_cents,
       b.created_at, b.updated_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.id = $1
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view           queries.BookingView
		checkIn        pgtype.Date
		checkOut       pgtype.Date
		refundCents    pgtype.Int8
		deductionCents pgtype.Int8
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	row := r.db.QueryRow(ctx, findBookingByIDSQL, id)
	err := row.Scan(
		&view.ID, &view.PropertyID, &view.PropertyTitle, &view.UserID,
		&checkIn, &checkOut, &view.Guests,
		&view.ContactPhone, &view.ContactEmail, &view.SpecialRequests,
		&view.TotalPriceCents, &view.Status, &view.PaymentStatus, &view.PaymentID,
		&view.Confirmed, &refundCents, &deductionCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	view.CheckIn = pgconv.DateFromPgtype(checkIn)
	view.CheckOut = pgconv.DateFromPgtype(checkOut)
	view.Nights = booking.ReconstructStayPeriod(view.CheckIn, view.CheckOut).Nights()
	view.RefundAmountCents = pgconv.Int8PtrFromPgtype(refundCents)
	view.CancellationFeeCents = pgconv.Int8PtrFromPgtype(deductionCents)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

const findBookingsByUserSQL = `
SELECT b.id, b.property_id, p.title,
       b.check_in, b.check_out, b.guests,
       b.total_price_cents, b.status, b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC
`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	defer rows.Close()

	items := []queries.BookingListItem{}
	for rows.Next() {
		var (
			item      queries.BookingListItem
			checkIn   pgtype.Date
			checkOut  pgtype.Date
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.PropertyID, &item.PropertyTitle,
			&checkIn, &checkOut, &item.Guests,
			&item.TotalPriceCents, &item.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckIn = pgconv.DateFromPgtype(checkIn)
		item.CheckOut = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return items, nil
}

const countOverlappingSQL = `
SELECT COUNT(*)
FROM bookings
WHERE property_id = $1
  AND status IN ('pending', 'confirmed')
  AND check_in < $3
  AND check_out > $2
`

// CountOverlapping uses the half-open interval test; touching boundary dates
// do not count as overlap.
func (r *BookingReadStore) CountOverlapping(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	row := r.db.QueryRow(ctx, countOverlappingSQL,
		propertyID,
		pgconv.DateToPgtype(checkIn),
		pgconv.DateToPgtype(checkOut),
	)
	if err := row.Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

const snapshotBookingByIDSQL = `
SELECT id, property_id, user_id,
       check_in, check_out, guests,
       contact_phone, contact_email, special_requests,
       total_price_cents, status, payment_status, payment_id,
       refund_amount_cents, cancellation_fee_cents,
       created_at, updated_at
FROM bookings
WHERE id = $1
`

// SnapshotByID is the command-side read used to rehydrate the aggregate
// inside a transaction.
func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap           shared.BookingSnapshot
		checkIn        pgtype.Date
		checkOut       pgtype.Date
		refundCents    pgtype.Int8
		deductionCents pgtype.Int8
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	row := r.db.QueryRow(ctx, snapshotBookingByIDSQL, id)
	err := row.Scan(
		&snap.ID, &snap.PropertyID, &snap.UserID,
		&checkIn, &checkOut, &snap.Guests,
		&snap.ContactPhone, &snap.ContactEmail, &snap.SpecialRequests,
		&snap.TotalPriceCents, &snap.Status, &snap.PaymentStatus, &snap.PaymentID,
		&refundCents, &deductionCents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to snapshot booking", err)
	}

	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.RefundAmountCents = pgconv.Int8PtrFromPgtype(refundCents)
	snap.CancellationFeeCents = pgconv.Int8PtrFromPgtype(deductionCents)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &snap, nil
}
