package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Item").Preload("Booker")
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.Version == 0 {
		b.Version = 1
	}
	return translate(r.db.WithContext(ctx).Omit("Item", "Booker").Create(b).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.withRefs(ctx).First(&b, "booking_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// UpdateStatus sets the status only if the row still carries version.
// On success b.Version and b.Status reflect the stored row.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, status domain.BookingStatus) error {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("booking_id = ? AND version = ?", b.ID, b.Version).
		Updates(map[string]any{
			"status":     status,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrStaleVersion
	}
	b.Status = status
	b.Version++
	b.UpdatedAt = now
	return nil
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.withRefs(ctx).
		Where("booker_id = ?", bookerID).
		Order("start_time DESC").
		Find(&out).Error
	return out, err
}

// ListByOwner returns bookings across every item owned by ownerID.
func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.withRefs(ctx).
		Joins("JOIN items ON items.item_id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("bookings.start_time DESC").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) ListApprovedByItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("item_id IN ? AND status = ?", itemIDs, domain.BookingApproved).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

// HasStartedBooking reports whether bookerID holds a booking of itemID that
// was not rejected and started before now.
func (r *BookingRepository) HasStartedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("item_id = ? AND booker_id = ? AND status <> ? AND start_time < ?",
			itemID, bookerID, domain.BookingRejected, now).
		Count(&cnt).Error
	return cnt > 0, err
}
