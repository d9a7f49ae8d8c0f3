package response

import (
	"time"

	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID                   uuid.UUID `json:"id"`
	PropertyID           uuid.UUID `json:"property_id"`
	PropertyTitle        string    `json:"property_title"`
	UserID               uuid.UUID `json:"user_id"`
	CheckIn              string    `json:"check_in"`
	CheckOut             string    `json:"check_out"`
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

// FromBookingView copies the matching fields and formats the dates, which are
// date-only on the wire.
func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.CheckIn = v.CheckIn.Format(dateLayout)
	resp.CheckOut = v.CheckOut.Format(dateLayout)
	return &resp
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyTitle   string    `json:"property_title"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Guests          int       `json:"guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromBookingList(items []queries.BookingListItem) []*BookingListResponse {
	res := make([]*BookingListResponse, len(items))
	for i, it := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, &it)
		resp.CheckIn = it.CheckIn.Format(dateLayout)
		resp.CheckOut = it.CheckOut.Format(dateLayout)
		res[i] = &resp
	}
	return res
}

type AvailabilityResponse struct {
	Available          bool      `json:"available"`
	PropertyID         uuid.UUID `json:"property_id"`
	CheckIn            string    `json:"check_in"`
	CheckOut           string    `json:"check_out"`
	Nights             int       `json:"nights"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	MaxGuests          int       `json:"max_guests"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:          v.Available,
		PropertyID:         v.PropertyID,
		CheckIn:            v.CheckIn.Format(dateLayout),
		CheckOut:           v.CheckOut.Format(dateLayout),
		Nights:             v.Nights,
		PricePerNightCents: v.PricePerNightCents,
		MaxGuests:          v.MaxGuests,
	}
}

type QuoteResponse struct {
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

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

type HistoryEntryResponse struct {
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

func FromHistoryList(entries []queries.HistoryEntryView) []*HistoryEntryResponse {
	res := make([]*HistoryEntryResponse, len(entries))
	for i, e := range entries {
		var resp HistoryEntryResponse
		_ = copier.Copy(&resp, &e)
		res[i] = &resp
	}
	return res
}

type ReceiptResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingStatus string    `json:"booking_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Guest         struct {
		ContactPhone string `json:"contact_phone"`
		ContactEmail string `json:"contact_email"`
	} `json:"guest_info"`
	Property struct {
		Title        string `json:"title"`
		City         string `json:"city"`
		PropertyType string `json:"property_type"`
	} `json:"property_info"`
	Details struct {
		CheckIn         string `json:"check_in"`
		CheckOut        string `json:"check_out"`
		Nights          int    `json:"nights"`
		Guests          int    `json:"guests"`
		SpecialRequests string `json:"special_requests"`
	} `json:"booking_details"`
	Pricing struct {
		PricePerNightCents int64 `json:"price_per_night_cents"`
		Nights             int   `json:"nights"`
		BaseCents          int64 `json:"base_price_cents"`
		TaxCents           int64 `json:"tax_cents"`
		FeeCents           int64 `json:"service_fee_cents"`
		SubtotalCents      int64 `json:"subtotal_cents"`
		TotalPaidCents     int64 `json:"total_paid_cents"`
	} `json:"pricing"`
	Payment struct {
		PaymentStatus        string `json:"payment_status"`
		PaymentID            string `json:"payment_id"`
		RefundAmountCents    *int64 `json:"refund_amount_cents,omitempty"`
		CancellationFeeCents *int64 `json:"cancellation_fee_cents,omitempty"`
	} `json:"payment_info"`
	StatusInfo struct {
		CurrentStatus string `json:"current_status"`
		Confirmed     bool   `json:"confirmed"`
		CanCancel     bool   `json:"can_cancel"`
		CanComplete   bool   `json:"can_complete"`
	} `json:"status_info"`
}

func FromReceiptView(v *queries.ReceiptView) *ReceiptResponse {
	var resp ReceiptResponse
	_ = copier.Copy(&resp, v)
	resp.Details.CheckIn = v.Details.CheckIn.Format(dateLayout)
	resp.Details.CheckOut = v.Details.CheckOut.Format(dateLayout)
	return &resp
}

type CancelResponse struct {
	Booking           *BookingResponse `json:"booking"`
	RefundRequested   bool             `json:"refund_requested"`
	RefundAmountCents *int64           `json:"refund_amount_cents,omitempty"`
	DeductionCents    *int64           `json:"deduction_cents,omitempty"`
}
