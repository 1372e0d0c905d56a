package domain

import "time"

// Item is a thing an owner lends out. RequestID links it back to the
// ItemRequest it was listed in answer to.
type Item struct {
	ID          int64     `json:"id" gorm:"column:item_id;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Available   bool      `json:"available" gorm:"not null"`
	OwnerID     int64     `json:"ownerId" gorm:"not null;index"`
	RequestID   *int64    `json:"requestId,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	Owner   *User        `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Request *ItemRequest `json:"-" gorm:"foreignKey:RequestID;constraint:OnDelete:SET NULL"`
}

func (Item) TableName() string { return "items" }
