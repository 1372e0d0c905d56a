package item

import (
	"time"

	"shareit/internal/domain"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is a partial update; nil fields are left alone.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type ShortBooking struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *ShortBooking     `json:"lastBooking"`
	NextBooking *ShortBooking     `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

// View is an item composed for one viewer. Last and Next are only set when
// the viewer owns the item.
type View struct {
	Item     domain.Item
	Last     *domain.Booking
	Next     *domain.Booking
	Comments []domain.Comment
}

func ToResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func ToResponses(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, ToResponse(&items[i]))
	}
	return out
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{ID: c.ID, Text: c.Text, Created: c.Created}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func toShortBooking(b *domain.Booking) *ShortBooking {
	if b == nil {
		return nil
	}
	return &ShortBooking{ID: b.ID, BookerID: b.BookerID, Start: b.Start, End: b.End}
}

func ToDetailResponse(v View) ItemDetailResponse {
	comments := make([]CommentResponse, 0, len(v.Comments))
	for i := range v.Comments {
		comments = append(comments, ToCommentResponse(&v.Comments[i]))
	}
	return ItemDetailResponse{
		ItemResponse: ToResponse(&v.Item),
		LastBooking:  toShortBooking(v.Last),
		NextBooking:  toShortBooking(v.Next),
		Comments:     comments,
	}
}

func ToDetailResponses(views []View) []ItemDetailResponse {
	out := make([]ItemDetailResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToDetailResponse(v))
	}
	return out
}
