package domain

import "time"

// ItemRequest is a wish posted by a user for an item nobody lists yet.
// The items answering it are found by Item.RequestID, never stored here.
type ItemRequest struct {
	ID          int64     `json:"id" gorm:"column:request_id;primaryKey"`
	Description string    `json:"description" gorm:"type:text;not null"`
	RequestorID int64     `json:"requestorId" gorm:"not null;index"`
	Created     time.Time `json:"created" gorm:"not null;index"`

	Requestor *User `json:"-" gorm:"foreignKey:RequestorID;constraint:OnDelete:CASCADE"`
}

func (ItemRequest) TableName() string { return "requests" }
