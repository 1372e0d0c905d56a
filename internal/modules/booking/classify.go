package booking

import (
	"sort"
	"time"

	"shareit/internal/domain"
)

// Matches reports whether b falls under state at instant now.
func Matches(b domain.Booking, state domain.BookingState, now time.Time) bool {
	switch state {
	case domain.StateAll:
		return true
	case domain.StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case domain.StateFuture:
		return b.Start.After(now)
	case domain.StatePast:
		return b.End.Before(now)
	case domain.StateWaiting:
		return b.Status == domain.BookingWaiting
	case domain.StateRejected:
		return b.Status == domain.BookingRejected
	}
	return false
}

// Classify keeps the bookings matching state. The input is not modified.
func Classify(bookings []domain.Booking, state domain.BookingState, now time.Time) []domain.Booking {
	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if Matches(b, state, now) {
			out = append(out, b)
		}
	}
	return out
}

// SortByStartDesc orders bookings most recent start first, in place.
func SortByStartDesc(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Start.After(bookings[j].Start)
	})
}
