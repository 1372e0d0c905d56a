package repository

import (
	"context"

	"shareit/internal/domain"
	"shareit/internal/pkg/pagination"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	return translate(r.db.WithContext(ctx).Omit("Requestor").Create(req).Error)
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	var req domain.ItemRequest
	if err := r.db.WithContext(ctx).First(&req, "request_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &req, nil
}

func (r *RequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	var out []domain.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created ASC").
		Find(&out).Error
	return out, err
}

// ListOthers pages through requests made by anyone but userID, newest first.
func (r *RequestRepository) ListOthers(ctx context.Context, userID int64, page pagination.Page) ([]domain.ItemRequest, error) {
	var out []domain.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requestor_id <> ?", userID).
		Order("created DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&out).Error
	return out, err
}
