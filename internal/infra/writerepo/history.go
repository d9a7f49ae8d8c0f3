package writerepo

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"
)

type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

const insertHistorySQL = `
INSERT INTO booking_status_history (
	id, booking_id, old_status, new_status, changed_by, reason,
	refund_amount_cents, deduction_cents, created_at
) VALUES (
	gen_random_uuid(), $1, $2, $3, $4, $5,
	$6, $7, $8
)
`

// Append inserts one trail entry. The table has no update or delete path.
func (r *HistoryRepository) Append(ctx context.Context, dbtx db.DBTX, entry shared.HistoryEntry) error {
	_, err := dbtx.Exec(ctx, insertHistorySQL,
		entry.BookingID,
		entry.OldStatus,
		entry.NewStatus,
		entry.ChangedBy,
		entry.Reason,
		pgconv.Int8PtrToPgtype(entry.RefundAmountCents),
		pgconv.Int8PtrToPgtype(entry.DeductionCents),
		pgconv.TimestamptzToPgtype(entry.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append status history", err)
	}
	return nil
}
