package booking

import (
	"context"

	"shareit/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, b *domain.Booking, status domain.BookingStatus) error
	ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
}

type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventRecorder receives booking lifecycle events: created, approved, rejected.
type EventRecorder interface {
	BookingEvent(event string)
}
