package repository

import (
	"context"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return translate(r.db.WithContext(ctx).Omit("Item", "Author").Create(c).Error)
}

// ListByItems returns comments of the given items with their authors,
// oldest first.
func (r *CommentRepository) ListByItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var out []domain.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("comment_id ASC").
		Find(&out).Error
	return out, err
}
