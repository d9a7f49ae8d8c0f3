package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	PropertyID      uuid.UUID `json:"property_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut        string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	ContactPhone    string    `json:"contact_phone" binding:"omitempty,max=32"`
	ContactEmail    string    `json:"contact_email" binding:"omitempty,email"`
	SpecialRequests string    `json:"special_requests" binding:"omitempty,max=1000"`
}

// Dates parses the bound date strings. Binding already validated the layout,
// so errors here only occur when the struct is built by hand.
func (r CreateBookingRequest) Dates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type CancelBookingRequest struct {
	Reason        string `json:"reason" binding:"omitempty,max=500"`
	RequestRefund bool   `json:"request_refund"`
}

type AvailabilityQuery struct {
	PropertyID uuid.UUID `form:"property_id" binding:"required"`
	CheckIn    string    `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string    `form:"check_out" binding:"required,datetime=2006-01-02"`
}

func (q AvailabilityQuery) Dates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(dateLayout, q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type QuoteQuery struct {
	PropertyID uuid.UUID `form:"property_id" binding:"required"`
	CheckIn    string    `form:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string    `form:"check_out" binding:"required,datetime=2006-01-02"`
	Guests     int       `form:"guests" binding:"required,min=1"`
}

func (q QuoteQuery) Dates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(dateLayout, q.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(dateLayout, q.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
