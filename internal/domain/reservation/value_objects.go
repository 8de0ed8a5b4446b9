package reservation

import (
	"time"

	"campsite-reservation/internal/pkg/clock"
)

type Guest struct {
	firstName string
	lastName  string
	email     string
}

func NewGuest(firstName, lastName, email string) Guest {
	return Guest{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
	}
}

func (g Guest) FirstName() string { return g.firstName }
func (g Guest) LastName() string  { return g.lastName }
func (g Guest) Email() string     { return g.email }

// StayRange is an inclusive arrival..departure date range. Both endpoints are
// normalized to UTC calendar dates; a one-night stay has departure one day
// after arrival and occupies both dates.
type StayRange struct {
	arrival   time.Time
	departure time.Time
}

func NewStayRange(arrival, departure time.Time) StayRange {
	return StayRange{
		arrival:   clock.DateOf(arrival),
		departure: clock.DateOf(departure),
	}
}

func (r StayRange) Arrival() time.Time   { return r.arrival }
func (r StayRange) Departure() time.Time { return r.departure }

// Days is the signed day difference between departure and arrival.
func (r StayRange) Days() int {
	return int(r.departure.Sub(r.arrival).Hours() / 24)
}

// Dates lists every date in the range ascending, endpoints included.
func (r StayRange) Dates() []time.Time {
	if r.arrival.After(r.departure) {
		return nil
	}
	dates := make([]time.Time, 0, r.Days()+1)
	for d := r.arrival; !d.After(r.departure); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (r StayRange) Equal(other StayRange) bool {
	return r.arrival.Equal(other.arrival) && r.departure.Equal(other.departure)
}

// Delta is the slot churn needed to move a reservation from one stay range to
// another: dates to release and dates to newly claim.
type Delta struct {
	DatesToRemove []time.Time
	DatesToAdd    []time.Time
}

// DeltaTo diffs the receiver (current range) against the next range. Disjoint
// ranges swap wholesale; overlapping ranges exchange only the non-shared
// dates, ascending. Linear containment checks are fine at the bounded stay
// lengths allowed here.
func (r StayRange) DeltaTo(next StayRange) Delta {
	if r.departure.Before(next.arrival) || next.departure.Before(r.arrival) {
		return Delta{
			DatesToRemove: r.Dates(),
			DatesToAdd:    next.Dates(),
		}
	}

	oldDates := r.Dates()
	newDates := next.Dates()
	return Delta{
		DatesToRemove: subtractDates(oldDates, newDates),
		DatesToAdd:    subtractDates(newDates, oldDates),
	}
}

func subtractDates(from, remove []time.Time) []time.Time {
	result := make([]time.Time, 0, len(from))
	for _, d := range from {
		if !containsDate(remove, d) {
			result = append(result, d)
		}
	}
	return result
}

func containsDate(dates []time.Time, target time.Time) bool {
	for _, d := range dates {
		if d.Equal(target) {
			return true
		}
	}
	return false
}
