package item

import (
	"context"
	"time"

	"shareit/internal/domain"
	"shareit/internal/pkg/pagination"
)

type ItemRepository interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, it *domain.Item) error
	ListByOwner(ctx context.Context, ownerID int64, page pagination.Page) ([]domain.Item, error)
	Search(ctx context.Context, text string, page pagination.Page) ([]domain.Item, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// BookingGate answers the booking questions the item views and the comment
// gate need.
type BookingGate interface {
	ListApprovedByItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error)
	HasStartedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error)
}

type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
}
