package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type BookingView struct {
	ID                   uuid.UUID `json:"id"`
	PropertyID           uuid.UUID `json:"property_id"`
	PropertyTitle        string    `json:"property_title"`
	UserID               uuid.UUID `json:"user_id"`
	CheckIn              time.Time `json:"check_in"`
	CheckOut             time.Time `json:"check_out"`
	Nights               int       `json:"nights"`
	Guests               int       `json:"guests"`
	ContactPhone         string    `json:"contact_phone"`
	ContactEmail         string    `json:"contact_email"`
	SpecialRequests      string    `json:"special_requests"`
	TotalPriceCents      int64     `json:"total_price_cents"`
	Status               string    `json:"status"`
	PaymentStatus        string    `json:"payment_status"`
	PaymentID            string    `json:"payment_id"`
	Confirmed            bool      `json:"confirmed"`
	RefundAmountCents    *int64    `json:"refund_amount_cents,omitempty"`
	CancellationFeeCents *int64    `json:"cancellation_fee_cents,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyTitle   string    `json:"property_title"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int       `json:"guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type PropertyView struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	City             string    `json:"city"`
	PropertyType     string    `json:"property_type"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	MaxGuests        int       `json:"max_guests"`
}

type AvailabilityView struct {
	Available          bool      `json:"available"`
	PropertyID         uuid.UUID `json:"property_id"`
	CheckIn            time.Time `json:"check_in"`
	CheckOut           time.Time `json:"check_out"`
	Nights             int       `json:"nights"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	MaxGuests          int       `json:"max_guests"`
}

type QuoteView struct {
	PropertyID         uuid.UUID `json:"property_id"`
	Nights             int       `json:"nights"`
	Guests             int       `json:"guests"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	BaseCents          int64     `json:"base_price_cents"`
	TaxCents           int64     `json:"tax_cents"`
	FeeCents           int64     `json:"service_fee_cents"`
	TotalCents         int64     `json:"total_cents"`
	MaxGuests          int       `json:"max_guests"`
}

type HistoryEntryView struct {
	ID                uuid.UUID `json:"id"`
	BookingID         uuid.UUID `json:"booking_id"`
	OldStatus         string    `json:"old_status"`
	NewStatus         string    `json:"new_status"`
	ChangedBy         uuid.UUID `json:"changed_by"`
	Reason            string    `json:"reason"`
	RefundAmountCents *int64    `json:"refund_amount_cents,omitempty"`
	DeductionCents    *int64    `json:"deduction_cents,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ReceiptView struct {
	BookingID     uuid.UUID       `json:"booking_id"`
	BookingStatus string          `json:"booking_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Guest         ReceiptGuest    `json:"guest_info"`
	Property      ReceiptProperty `json:"property_info"`
	Details       ReceiptDetails  `json:"booking_details"`
	Pricing       ReceiptPricing  `json:"pricing"`
	Payment       ReceiptPayment  `json:"payment_info"`
	StatusInfo    ReceiptStatus   `json:"status_info"`
}

type ReceiptGuest struct {
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

type ReceiptProperty struct {
	Title        string `json:"title"`
	City         string `json:"city"`
	PropertyType string `json:"property_type"`
}

type ReceiptDetails struct {
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"special_requests"`
}

type ReceiptPricing struct {
	PricePerNightCents int64 `json:"price_per_night_cents"`
	Nights             int   `json:"nights"`
	BaseCents          int64 `json:"base_price_cents"`
	TaxCents           int64 `json:"tax_cents"`
	FeeCents           int64 `json:"service_fee_cents"`
	SubtotalCents      int64 `json:"subtotal_cents"`
	TotalPaidCents     int64 `json:"total_paid_cents"`
}

type ReceiptPayment struct {
	PaymentStatus        string `json:"payment_status"`
	PaymentID            string `json:"payment_id"`
	RefundAmountCents    *int64 `json:"refund_amount_cents,omitempty"`
	CancellationFeeCents *int64 `json:"cancellation_fee_cents,omitempty"`
}

type ReceiptStatus struct {
	CurrentStatus string `json:"current_status"`
	Confirmed     bool   `json:"confirmed"`
	CanCancel     bool   `json:"can_cancel"`
	CanComplete   bool   `json:"can_complete"`
}
