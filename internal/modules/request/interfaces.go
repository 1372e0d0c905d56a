package request

import (
	"context"

	"shareit/internal/domain"
	"shareit/internal/pkg/pagination"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, userID int64, page pagination.Page) ([]domain.ItemRequest, error)
}

// ItemFinder resolves the items listed in answer to requests.
type ItemFinder interface {
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}

type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
