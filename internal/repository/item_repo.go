package repository

import (
	"context"

	"shareit/internal/domain"
	"shareit/internal/pkg/pagination"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, it *domain.Item) error {
	return translate(r.db.WithContext(ctx).Omit("Owner", "Request").Create(it).Error)
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var it domain.Item
	if err := r.db.WithContext(ctx).First(&it, "item_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &it, nil
}

// Update writes the mutable columns. Available is selected explicitly so a
// false value is not skipped.
func (r *ItemRepository) Update(ctx context.Context, it *domain.Item) error {
	tx := r.db.WithContext(ctx).Model(it).
		Select("name", "description", "available", "updated_at").
		Updates(it)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64, page pagination.Page) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("item_id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&out).Error
	return out, err
}

// Search matches text against name or description, ignoring case, among
// available items only.
func (r *ItemRepository) Search(ctx context.Context, text string, page pagination.Page) ([]domain.Item, error) {
	pattern := likePattern(text)

	var out []domain.Item
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern).
		Order("item_id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&out).Error
	return out, err
}

func (r *ItemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var out []domain.Item
	err := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("item_id ASC").
		Find(&out).Error
	return out, err
}
