package domain

import "time"

type Comment struct {
	ID       int64     `json:"id" gorm:"column:comment_id;primaryKey"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	ItemID   int64     `json:"itemId" gorm:"not null;index"`
	AuthorID int64     `json:"authorId" gorm:"not null"`
	Created  time.Time `json:"created" gorm:"not null"`

	Item   *Item `json:"-" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Author *User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comments" }
