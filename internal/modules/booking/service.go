package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"shareit/internal/domain"
	"shareit/internal/pkg/apperror"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/pagination"
	"shareit/internal/repository"
)

type Service struct {
	bookings BookingRepository
	items    ItemRepository
	users    UserRepository
	clock    clock.Clock
	events   EventRecorder
	log      zerolog.Logger
}

func NewService(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	clk clock.Clock,
	events EventRecorder,
	log zerolog.Logger,
) *Service {
	return &Service{
		bookings: bookings,
		items:    items,
		users:    users,
		clock:    clk,
		events:   events,
		log:      log.With().Str("component", "booking").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, notFoundOr(err, errUserNotFound(bookerID))
	}

	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, notFoundOr(err, errItemNotFound(req.ItemID))
	}

	start, end := req.Start.UTC(), req.End.UTC()
	if !start.Before(end) {
		s.log.Warn().Int64("item_id", item.ID).Time("start", start).Time("end", end).Msg("booking rejected: start is not before end")
		return nil, apperror.Validation("booking start must be before end")
	}

	// owners see their own item as not bookable
	if item.OwnerID == bookerID {
		s.log.Warn().Int64("item_id", item.ID).Int64("user_id", bookerID).Msg("booking rejected: owner tried to book own item")
		return nil, errItemNotFound(item.ID)
	}

	if !item.Available {
		s.log.Warn().Int64("item_id", item.ID).Msg("booking rejected: item unavailable")
		return nil, apperror.Validation("item %d is not available", item.ID)
	}

	b := &domain.Booking{
		Start:    start,
		End:      end,
		ItemID:   item.ID,
		BookerID: bookerID,
		Status:   domain.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	b.Item = item
	b.Booker = booker

	s.record("created")
	s.log.Info().Int64("booking_id", b.ID).Int64("item_id", item.ID).Int64("booker_id", bookerID).Msg("booking created")
	return b, nil
}

// Decide approves or rejects a booking on behalf of the item owner.
// Setting the status it already has fails; switching between APPROVED and
// REJECTED is allowed.
func (s *Service) Decide(ctx context.Context, bookingID, ownerID int64, approved bool) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundOr(err, errBookingNotFound(bookingID))
	}

	item, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		return nil, notFoundOr(err, errItemNotFound(b.ItemID))
	}

	if item.OwnerID != ownerID {
		s.log.Warn().Int64("booking_id", bookingID).Int64("user_id", ownerID).Msg("decision rejected: not the item owner")
		return nil, errBookingNotFound(bookingID)
	}

	next := domain.BookingRejected
	if approved {
		next = domain.BookingApproved
	}
	if b.Status == next {
		s.log.Warn().Int64("booking_id", bookingID).Str("status", string(next)).Msg("decision rejected: status already set")
		return nil, apperror.Validation("booking %d status is already %s", bookingID, next)
	}

	prev := b.Status
	if err := s.bookings.UpdateStatus(ctx, b, next); err != nil {
		if errors.Is(err, repository.ErrStaleVersion) {
			return nil, apperror.Conflict("booking %d was modified concurrently", bookingID)
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	b.Item = item

	if approved {
		s.record("approved")
	} else {
		s.record("rejected")
	}
	s.log.Info().Int64("booking_id", bookingID).Str("from", string(prev)).Str("to", string(next)).Msg("booking status changed")
	return b, nil
}

// Get returns a booking to its booker or to the owner of the booked item.
// Anyone else gets NotFound.
func (s *Service) Get(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundOr(err, errBookingNotFound(bookingID))
	}
	if b.BookerID == userID {
		return b, nil
	}

	item := b.Item
	if item == nil {
		if item, err = s.items.GetByID(ctx, b.ItemID); err != nil {
			return nil, notFoundOr(err, errItemNotFound(b.ItemID))
		}
	}
	if item.OwnerID != userID {
		return nil, errBookingNotFound(bookingID)
	}
	return b, nil
}

func (s *Service) ListForBooker(ctx context.Context, userID int64, state string, page pagination.Page) ([]domain.Booking, error) {
	return s.list(ctx, userID, state, page, s.bookings.ListByBooker)
}

func (s *Service) ListForOwner(ctx context.Context, userID int64, state string, page pagination.Page) ([]domain.Booking, error) {
	return s.list(ctx, userID, state, page, s.bookings.ListByOwner)
}

type fetchFunc func(ctx context.Context, userID int64) ([]domain.Booking, error)

// list classifies the full candidate set, sorts it by start descending and
// cuts the requested page out of the result.
func (s *Service) list(ctx context.Context, userID int64, token string, page pagination.Page, fetch fetchFunc) ([]domain.Booking, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	state, ok := domain.ParseBookingState(token)
	if !ok {
		s.log.Warn().Str("state", token).Msg("unknown booking state")
		return nil, apperror.UnknownState(token)
	}

	candidates, err := fetch(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	matched := Classify(candidates, state, s.clock.Now())
	SortByStartDesc(matched)

	lo, hi := page.Window(len(matched))
	return matched[lo:hi], nil
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

func (s *Service) record(event string) {
	if s.events != nil {
		s.events.BookingEvent(event)
	}
}

// notFoundOr returns nf for a missing record and wraps anything else.
func notFoundOr(err error, nf error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nf
	}
	return fmt.Errorf("storage: %w", err)
}
