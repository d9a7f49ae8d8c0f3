package property

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidNightlyRate = errors.New("nightly rate cannot be negative")
	ErrInvalidMaxGuests   = errors.New("max guests must be at least 1")
)

// Property is a read-only snapshot of a catalog listing. The catalog itself is
// an external collaborator; bookings only need the pricing and capacity facts.
type Property struct {
	id               uuid.UUID
	title            string
	city             string
	propertyType     string
	nightlyRateCents int64
	maxGuests        int
}

func NewProperty(id uuid.UUID, title, city, propertyType string, nightlyRateCents int64, maxGuests int) (*Property, error) {
	if nightlyRateCents < 0 {
		return nil, ErrInvalidNightlyRate
	}
	if maxGuests < 1 {
		return nil, ErrInvalidMaxGuests
	}
	return &Property{
		id:               id,
		title:            title,
		city:             city,
		propertyType:     propertyType,
		nightlyRateCents: nightlyRateCents,
		maxGuests:        maxGuests,
	}, nil
}

func (p *Property) ID() uuid.UUID           { return p.id }
func (p *Property) Title() string           { return p.title }
func (p *Property) City() string            { return p.city }
func (p *Property) PropertyType() string    { return p.propertyType }
func (p *Property) NightlyRateCents() int64 { return p.nightlyRateCents }
func (p *Property) MaxGuests() int          { return p.maxGuests }
