package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HistoryReadStore struct {
	db db.DBTX
}

func NewHistoryReadStore(dbtx db.DBTX) *HistoryReadStore {
	return &HistoryReadStore{db: dbtx}
}

const findHistoryByBookingSQL = `
SELECT id, booking_id, old_status, new_status, changed_by, reason,
       refund_amount_cents, deduction_cents, created_at
FROM booking_status_history
WHERE booking_id = $1
ORDER BY created_at DESC
`

// FindByBookingID returns the trail newest first.
func (r *HistoryReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]queries.HistoryEntryView, error) {
	rows, err := r.db.Query(ctx, findHistoryByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find status history", err)
	}
	defer rows.Close()

	entries := []queries.HistoryEntryView{}
	for rows.Next() {
		var (
			entry          queries.HistoryEntryView
			refundCents    pgtype.Int8
			deductionCents pgtype.Int8
			createdAt      pgtype.Timestamptz
		)
		if err := rows.Scan(
			&entry.ID, &entry.BookingID, &entry.OldStatus, &entry.NewStatus,
			&entry.ChangedBy, &entry.Reason,
			&refundCents, &deductionCents, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		entry.RefundAmountCents = pgconv.Int8PtrFromPgtype(refundCents)
		entry.DeductionCents = pgconv.Int8PtrFromPgtype(deductionCents)
		entry.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}

	return entries, nil
}
