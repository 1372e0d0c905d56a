package item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"shareit/internal/domain"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/pagination"
	"shareit/internal/pkg/validator"
	"shareit/internal/repository"
)

type Service struct {
	items    ItemRepository
	users    UserRepository
	bookings BookingGate
	comments CommentRepository
	requests RequestRepository
	clock    clock.Clock
	log      zerolog.Logger
}

func NewService(
	items ItemRepository,
	users UserRepository,
	bookings BookingGate,
	comments CommentRepository,
	requests RequestRepository,
	clk clock.Clock,
	log zerolog.Logger,
) *Service {
	return &Service{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		clock:    clk,
		log:      log.With().Str("component", "item").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*domain.Item, error) {
	if err := s.ensureUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if validator.Blank(req.Name) || validator.Blank(req.Description) {
		return nil, apperror.Validation("name and description must not be blank")
	}
	if req.Available == nil {
		return nil, apperror.Validation("available must be set")
	}

	if req.RequestID != nil {
		if _, err := s.requests.GetByID(ctx, *req.RequestID); err != nil {
			return nil, notFoundOr(err, errRequestNotFound(*req.RequestID))
		}
	}

	it := &domain.Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.log.Info().Int64("item_id", it.ID).Int64("owner_id", ownerID).Msg("item created")
	return it, nil
}

// Update applies the supplied fields. Blank name or description is ignored.
func (s *Service) Update(ctx context.Context, itemID, userID int64, req UpdateItemRequest) (*domain.Item, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, notFoundOr(err, errItemNotFound(itemID))
	}
	if it.OwnerID != userID {
		s.log.Warn().Int64("item_id", itemID).Int64("user_id", userID).Msg("item update rejected: not the owner")
		return nil, apperror.AccessDenied("user %d does not own item %d", userID, itemID)
	}

	if req.Name != nil && !validator.Blank(*req.Name) {
		it.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && !validator.Blank(*req.Description) {
		it.Description = strings.TrimSpace(*req.Description)
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.items.Update(ctx, it); err != nil {
		return nil, notFoundOr(err, errItemNotFound(itemID))
	}
	return it, nil
}

func (s *Service) Get(ctx context.Context, itemID, userID int64) (*View, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, notFoundOr(err, errItemNotFound(itemID))
	}

	views, err := s.compose(ctx, []domain.Item{*it}, userID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64, page pagination.Page) ([]View, error) {
	if err := s.ensureUser(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.items.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return s.compose(ctx, items, ownerID)
}

// Search returns available items whose name or description contains text.
// Blank text yields an empty result without touching storage.
func (s *Service) Search(ctx context.Context, text string, page pagination.Page) ([]domain.Item, error) {
	if validator.Blank(text) {
		return []domain.Item{}, nil
	}
	items, err := s.items.Search(ctx, strings.TrimSpace(text), page)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// AddComment lets a user comment on an item they have booked, provided the
// booking was not rejected and has already started.
func (s *Service) AddComment(ctx context.Context, itemID, authorID int64, text string) (*domain.Comment, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, notFoundOr(err, errItemNotFound(itemID))
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, notFoundOr(err, errUserNotFound(authorID))
	}
	if validator.Blank(text) {
		return nil, errEmptyComment
	}

	now := s.clock.Now()
	ok, err := s.bookings.HasStartedBooking(ctx, it.ID, authorID, now)
	if err != nil {
		return nil, fmt.Errorf("check booking history: %w", err)
	}
	if !ok {
		s.log.Warn().Int64("item_id", itemID).Int64("user_id", authorID).Msg("comment rejected: no qualifying booking")
		return nil, errNotEligible
	}

	c := &domain.Comment{
		Text:     strings.TrimSpace(text),
		ItemID:   it.ID,
		AuthorID: authorID,
		Created:  now,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	c.Author = author
	return c, nil
}

// compose attaches comments to every item and, for items the viewer owns,
// the last and next approved bookings.
func (s *Service) compose(ctx context.Context, items []domain.Item, viewerID int64) ([]View, error) {
	views := make([]View, len(items))
	if len(items) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(items))
	var owned []int64
	for i, it := range items {
		views[i].Item = it
		ids = append(ids, it.ID)
		if it.OwnerID == viewerID {
			owned = append(owned, it.ID)
		}
	}

	comments, err := s.comments.ListByItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	byItem := make(map[int64][]domain.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	approved := map[int64][]domain.Booking{}
	if len(owned) > 0 {
		bs, err := s.bookings.ListApprovedByItems(ctx, owned)
		if err != nil {
			return nil, fmt.Errorf("list approved bookings: %w", err)
		}
		for _, b := range bs {
			approved[b.ItemID] = append(approved[b.ItemID], b)
		}
	}

	now := s.clock.Now()
	for i := range views {
		views[i].Comments = byItem[views[i].Item.ID]
		if views[i].Comments == nil {
			views[i].Comments = []domain.Comment{}
		}
		if views[i].Item.OwnerID == viewerID {
			views[i].Last, views[i].Next = LastAndNext(approved[views[i].Item.ID], now)
		}
	}
	return views, nil
}

// LastAndNext picks the latest booking starting before now and the earliest
// starting after now. The input order does not matter.
func LastAndNext(bookings []domain.Booking, now time.Time) (last, next *domain.Booking) {
	for i := range bookings {
		b := &bookings[i]
		switch {
		case b.Start.Before(now):
			if last == nil || b.Start.After(last.Start) {
				last = b
			}
		case b.Start.After(now):
			if next == nil || b.Start.Before(next.Start) {
				next = b
			}
		}
	}
	return last, next
}

func (s *Service) ensureUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return errUserNotFound(userID)
	}
	return nil
}

func notFoundOr(err error, nf error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nf
	}
	return fmt.Errorf("storage: %w", err)
}
