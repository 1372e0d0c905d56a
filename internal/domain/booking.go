package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

// BookingState is the temporal/status filter applied to booking lists.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var bookingStates = map[string]BookingState{
	string(StateAll):      StateAll,
	string(StateCurrent):  StateCurrent,
	string(StatePast):     StatePast,
	string(StateFuture):   StateFuture,
	string(StateWaiting):  StateWaiting,
	string(StateRejected): StateRejected,
}

// ParseBookingState matches token case-insensitively. Surrounding spaces are ignored.
func ParseBookingState(token string) (BookingState, bool) {
	st, ok := bookingStates[strings.ToUpper(strings.TrimSpace(token))]
	return st, ok
}

type Booking struct {
	ID       int64         `json:"id" gorm:"column:booking_id;primaryKey"`
	Start    time.Time     `json:"start" gorm:"column:start_time;not null;index"`
	End      time.Time     `json:"end" gorm:"column:end_time;not null"`
	ItemID   int64         `json:"itemId" gorm:"not null;index"`
	BookerID int64         `json:"bookerId" gorm:"not null;index"`
	Status   BookingStatus `json:"status" gorm:"type:varchar(16);not null"`

	// Version is bumped on every status change.
	Version   int64     `json:"-" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Item   *Item `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Booker *User `json:"-" gorm:"foreignKey:BookerID;constraint:OnDelete:CASCADE"`
}

func (Booking) TableName() string { return "bookings" }
