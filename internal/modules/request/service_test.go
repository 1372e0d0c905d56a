package request

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shareit/internal/domain"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/pagination"
	"shareit/internal/repository"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	args := m.Called(ctx, req)
	req.ID = 50
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

func (m *MockRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

func (m *MockRequestRepository) ListOthers(ctx context.Context, userID int64, page pagination.Page) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}

type MockItemFinder struct {
	mock.Mock
}

func (m *MockItemFinder) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newService() (*Service, *MockRequestRepository, *MockItemFinder, *MockUserRepository) {
	reqs, items, users := new(MockRequestRepository), new(MockItemFinder), new(MockUserRepository)
	return NewService(reqs, items, users, clock.Fixed(now), zerolog.Nop()), reqs, items, users
}

func TestService_Create(t *testing.T) {
	svc, reqs, _, users := newService()
	ctx := context.Background()
	users.On("Exists", ctx, int64(1)).Return(true, nil)
	reqs.On("Create", ctx, mock.MatchedBy(func(r *domain.ItemRequest) bool {
		return r.Description == "need a ladder" && r.Created.Equal(now) && r.RequestorID == 1
	})).Return(nil)

	out, err := svc.Create(ctx, 1, " need a ladder ")

	require.NoError(t, err)
	assert.Equal(t, int64(50), out.Request.ID)
	assert.Empty(t, out.Items)
}

func TestService_Create_Errors(t *testing.T) {
	svc, reqs, _, users := newService()
	ctx := context.Background()
	users.On("Exists", ctx, int64(1)).Return(true, nil)
	users.On("Exists", ctx, int64(2)).Return(false, nil)

	_, err := svc.Create(ctx, 2, "ladder")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = svc.Create(ctx, 1, "  ")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	reqs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Get_FansOut(t *testing.T) {
	svc, reqs, items, users := newService()
	ctx := context.Background()
	rid := int64(5)
	users.On("Exists", ctx, int64(2)).Return(true, nil)
	reqs.On("GetByID", ctx, rid).Return(&domain.ItemRequest{ID: rid, Description: "ladder", RequestorID: 1}, nil)
	items.On("ListByRequestIDs", ctx, []int64{rid}).Return([]domain.Item{
		{ID: 20, Name: "Ladder", RequestID: &rid, OwnerID: 2},
	}, nil)

	out, err := svc.Get(ctx, rid, 2)

	require.NoError(t, err)
	resp := ToResponse(*out)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(20), resp.Items[0].ID)
	assert.Equal(t, rid, resp.Items[0].RequestID)
}

func TestService_Get_Missing(t *testing.T) {
	svc, reqs, _, users := newService()
	ctx := context.Background()
	users.On("Exists", ctx, int64(2)).Return(true, nil)
	reqs.On("GetByID", ctx, int64(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.Get(ctx, 5, 2)

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestService_ListOwn_GroupsItemsPerRequest(t *testing.T) {
	svc, reqs, items, users := newService()
	ctx := context.Background()
	r1, r2 := int64(1), int64(2)
	users.On("Exists", ctx, int64(9)).Return(true, nil)
	reqs.On("ListByRequestor", ctx, int64(9)).Return([]domain.ItemRequest{{ID: r1}, {ID: r2}}, nil)
	items.On("ListByRequestIDs", ctx, []int64{r1, r2}).Return([]domain.Item{
		{ID: 10, RequestID: &r2},
		{ID: 11, RequestID: &r2},
	}, nil)

	out, err := svc.ListOwn(ctx, 9)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Empty(t, out[0].Items)
	assert.NotNil(t, out[0].Items)
	assert.Len(t, out[1].Items, 2)
}

func TestService_ListOthers_Empty(t *testing.T) {
	svc, reqs, items, users := newService()
	ctx := context.Background()
	page, _ := pagination.New(0, 10)
	users.On("Exists", ctx, int64(9)).Return(true, nil)
	reqs.On("ListOthers", ctx, int64(9), page).Return([]domain.ItemRequest{}, nil)

	out, err := svc.ListOthers(ctx, 9, page)

	require.NoError(t, err)
	assert.Empty(t, out)
	items.AssertNotCalled(t, "ListByRequestIDs", mock.Anything, mock.Anything)
}
