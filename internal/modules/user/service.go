package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"shareit/internal/domain"
	"shareit/internal/pkg/validator"
	"shareit/internal/repository"
)

type Service struct {
	users UserRepository
	log   zerolog.Logger
}

func NewService(users UserRepository, log zerolog.Logger) *Service {
	return &Service{
		users: users,
		log:   log.With().Str("component", "user").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if validator.Blank(req.Name) {
		return nil, errBlankName
	}
	email := normalizeEmail(req.Email)
	if !validator.Email(email) {
		return nil, errInvalidEmail
	}

	u := &domain.User{Name: strings.TrimSpace(req.Name), Email: email}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn().Str("email", email).Msg("signup with registered email")
			return nil, errEmailTaken(email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.log.Info().Int64("user_id", u.ID).Msg("user created")
	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errUserNotFound(id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update applies the supplied fields; blank ones are ignored.
func (s *Service) Update(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && !validator.Blank(*req.Name) {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && !validator.Blank(*req.Email) {
		email := normalizeEmail(*req.Email)
		if !validator.Email(email) {
			return nil, errInvalidEmail
		}
		u.Email = email
	}

	if err := s.users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, errEmailTaken(u.Email)
		case errors.Is(err, repository.ErrNotFound):
			return nil, errUserNotFound(id)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errUserNotFound(id)
		}
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
