//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	"staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	UserID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	ContactPhone    string
	ContactEmail    string
	SpecialRequests string
	TotalPriceCents int64
	Status          string
	PaymentStatus   string
	PaymentID       string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:              uuid.New(),
		PropertyID:      uuid.New(),
		UserID:          uuid.New(),
		CheckIn:         now.AddDate(0, 0, 7),
		CheckOut:        now.AddDate(0, 0, 10),
		Guests:          2,
		ContactPhone:    "+1-555-0100",
		ContactEmail:    "guest@example.com",
		SpecialRequests: "",
		TotalPriceCents: 45000,
		Status:          "pending",
		PaymentStatus:   "unpaid",
		PaymentID:       "",
		Now:             now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain reconstructs the aggregate as if loaded from storage.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		b.PropertyID,
		b.UserID,
		booking.ReconstructStayPeriod(b.CheckIn, b.CheckOut),
		b.Guests,
		booking.NewContactInfo(b.ContactPhone, b.ContactEmail, b.SpecialRequests),
		b.TotalPriceCents,
		booking.Status(b.Status),
		booking.PaymentStatus(b.PaymentStatus),
		b.PaymentID,
		nil,
		nil,
		b.Now,
		b.Now,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		UserID:          b.UserID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		ContactPhone:    b.ContactPhone,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentID:       b.PaymentID,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		PropertyID:      b.PropertyID,
		CheckIn:         b.CheckIn.Format("2006-01-02"),
		CheckOut:        b.CheckOut.Format("2006-01-02"),
		Guests:          b.Guests,
		ContactPhone:    b.ContactPhone,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		PropertyID:      b.PropertyID,
		PropertyTitle:   "Harborview Loft",
		UserID:          b.UserID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Nights:          3,
		Guests:          b.Guests,
		ContactPhone:    b.ContactPhone,
		ContactEmail:    b.ContactEmail,
		SpecialRequests: b.SpecialRequests,
		TotalPriceCents: b.TotalPriceCents,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentID:       b.PaymentID,
		Confirmed:       b.Status == "confirmed",
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(guests int) *BookingBuilder {
	b.Guests = guests
	return b
}

func (b *BookingBuilder) WithTotalPriceCents(cents int64) *BookingBuilder {
	b.TotalPriceCents = cents
	return b
}

type PropertyBuilder struct {
	ID               uuid.UUID
	Title            string
	City             string
	PropertyType     string
	NightlyRateCents int64
	MaxGuests        int
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:               uuid.New(),
		Title:            "Harborview Loft",
		City:             "Lisbon",
		PropertyType:     "apartment",
		NightlyRateCents: 15000,
		MaxGuests:        4,
	}
}

func (p *PropertyBuilder) WithNightlyRateCents(cents int64) *PropertyBuilder {
	p.NightlyRateCents = cents
	return p
}

func (p *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	p.MaxGuests = n
	return p
}

func (p *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(p.ID, p.Title, p.City, p.PropertyType, p.NightlyRateCents, p.MaxGuests)
}

func (p *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	return &shared.PropertySnapshot{
		ID:               p.ID,
		Title:            p.Title,
		City:             p.City,
		PropertyType:     p.PropertyType,
		NightlyRateCents: p.NightlyRateCents,
		MaxGuests:        p.MaxGuests,
	}
}
