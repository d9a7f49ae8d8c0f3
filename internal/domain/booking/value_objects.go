package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStayPeriod = errors.New("check-out date must not be before check-in date")
	ErrCheckInInPast     = errors.New("check-in date cannot be in the past")
)

// StayPeriod is a half-open date interval [checkIn, checkOut). Equal boundary
// dates do not overlap, which allows back-to-back same-day turnover.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayPeriod normalizes both dates to midnight UTC and validates them
// against today. A same-day stay (checkIn == checkOut) is allowed.
func NewStayPeriod(checkIn, checkOut, today time.Time) (StayPeriod, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)

	if out.Before(in) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	if in.Before(truncateToDate(today)) {
		return StayPeriod{}, ErrCheckInInPast
	}

	return StayPeriod{checkIn: in, checkOut: out}, nil
}

// ReconstructStayPeriod rebuilds a period from storage without the
// past-check-in validation, which only applies at creation time.
func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: truncateToDate(checkIn), checkOut: truncateToDate(checkOut)}
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Days is the raw day difference; zero for a same-day stay.
func (p StayPeriod) Days() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// Nights is the number of nights charged. A same-day stay is charged one
// night as a deliberate minimum-charge policy.
func (p StayPeriod) Nights() int {
	if d := p.Days(); d > 1 {
		return d
	}
	return 1
}

// Overlaps implements the half-open interval test: two periods conflict iff
// each starts before the other ends.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && p.checkOut.After(other.checkIn)
}

// Ended reports whether the stay's check-out date has been reached.
func (p StayPeriod) Ended(now time.Time) bool {
	return !truncateToDate(now).Before(p.checkOut)
}

func (p StayPeriod) String() string {
	return fmt.Sprintf("[%s,%s)", p.checkIn.Format(time.DateOnly), p.checkOut.Format(time.DateOnly))
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ContactInfo is free-form guest contact data carried on the booking; the
// lifecycle never interprets it.
type ContactInfo struct {
	phone           string
	email           string
	specialRequests string
}

func NewContactInfo(phone, email, specialRequests string) ContactInfo {
	return ContactInfo{
		phone:           strings.TrimSpace(phone),
		email:           strings.TrimSpace(email),
		specialRequests: strings.TrimSpace(specialRequests),
	}
}

func (c ContactInfo) Phone() string           { return c.phone }
func (c ContactInfo) Email() string           { return c.email }
func (c ContactInfo) SpecialRequests() string { return c.specialRequests }
