package item

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"shareit/internal/domain"
	"shareit/internal/pkg/pagination"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, it *domain.Item) error {
	args := m.Called(ctx, it)
	if it != nil {
		it.ID = 100
	}
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, it *domain.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *MockItemRepository) ListByOwner(ctx context.Context, ownerID int64, page pagination.Page) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Search(ctx context.Context, text string, page pagination.Page) ([]domain.Item, error) {
	args := m.Called(ctx, text, page)
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) ListApprovedByItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingGate) HasStartedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, bookerID, now)
	return args.Bool(0), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 7
	}
	return args.Error(0)
}

func (m *MockCommentRepository) ListByItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemIDs)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
