package booking

import (
	"staybook/internal/domain/user"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle transition leaves this status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted, StatusRefunded:
		return true
	default:
		return false
	}
}

// PaymentStatus is tracked alongside the booking status but owned by the
// external payment collaborator; the lifecycle never validates one against
// the other.
type PaymentStatus string

const (
	PaymentUnpaid     PaymentStatus = "unpaid"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentFailed     PaymentStatus = "failed"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnpaid, PaymentProcessing, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	default:
		return false
	}
}

// Actor identifies who is requesting a lifecycle transition.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
