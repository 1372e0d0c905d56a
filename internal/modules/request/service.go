package request

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"shareit/internal/domain"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/pagination"
	"shareit/internal/pkg/validator"
	"shareit/internal/repository"
)

type Service struct {
	requests RequestRepository
	items    ItemFinder
	users    UserRepository
	clock    clock.Clock
	log      zerolog.Logger
}

func NewService(requests RequestRepository, items ItemFinder, users UserRepository, clk clock.Clock, log zerolog.Logger) *Service {
	return &Service{
		requests: requests,
		items:    items,
		users:    users,
		clock:    clk,
		log:      log.With().Str("component", "request").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, requestorID int64, description string) (*WithItems, error) {
	if err := s.ensureUser(ctx, requestorID); err != nil {
		return nil, err
	}
	if validator.Blank(description) {
		return nil, apperror.Validation("description must not be blank")
	}

	req := &domain.ItemRequest{
		Description: strings.TrimSpace(description),
		RequestorID: requestorID,
		Created:     s.clock.Now(),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	s.log.Info().Int64("request_id", req.ID).Int64("requestor_id", requestorID).Msg("item request created")
	return &WithItems{Request: *req, Items: []domain.Item{}}, nil
}

func (s *Service) Get(ctx context.Context, requestID, userID int64) (*WithItems, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("request %d not found", requestID)
		}
		return nil, fmt.Errorf("get request: %w", err)
	}

	out, err := s.fanOut(ctx, []domain.ItemRequest{*req})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// ListOwn returns the user's requests, oldest first.
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]WithItems, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requests.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list own requests: %w", err)
	}
	return s.fanOut(ctx, reqs)
}

// ListOthers pages through everybody else's requests, newest first.
func (s *Service) ListOthers(ctx context.Context, userID int64, page pagination.Page) ([]WithItems, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.requests.ListOthers(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return s.fanOut(ctx, reqs)
}

// fanOut looks up the answering items on every read; nothing is cached.
func (s *Service) fanOut(ctx context.Context, reqs []domain.ItemRequest) ([]WithItems, error) {
	out := make([]WithItems, len(reqs))
	if len(reqs) == 0 {
		return out, nil
	}

	ids := make([]int64, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	items, err := s.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list answering items: %w", err)
	}

	byRequest := make(map[int64][]domain.Item, len(reqs))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for i, r := range reqs {
		out[i] = WithItems{Request: r, Items: byRequest[r.ID]}
		if out[i].Items == nil {
			out[i].Items = []domain.Item{}
		}
	}
	return out, nil
}

func (s *Service) ensureUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return apperror.NotFound("user %d not found", userID)
	}
	return nil
}
