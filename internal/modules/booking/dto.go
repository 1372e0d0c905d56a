package booking

import (
	"time"

	"shareit/internal/domain"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type BookerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type BookingResponse struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status domain.BookingStatus `json:"status"`
	Booker BookerRef            `json:"booker"`
	Item   ItemRef              `json:"item"`
}

func ToResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
		Booker: BookerRef{ID: b.BookerID},
		Item:   ItemRef{ID: b.ItemID},
	}
	if b.Booker != nil {
		resp.Booker.Name = b.Booker.Name
	}
	if b.Item != nil {
		resp.Item.Name = b.Item.Name
	}
	return resp
}

func ToResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, ToResponse(&bs[i]))
	}
	return out
}
