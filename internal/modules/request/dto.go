package request

import (
	"time"

	"shareit/internal/domain"
)

const DefaultOthersPageSize = 10

type CreateRequest struct {
	Description string `json:"description" binding:"required"`
}

type ItemAnswer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId"`
}

type Response struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	RequestorID int64        `json:"requestorId"`
	Created     time.Time    `json:"created"`
	Items       []ItemAnswer `json:"items"`
}

// WithItems is a request together with the items answering it.
type WithItems struct {
	Request domain.ItemRequest
	Items   []domain.Item
}

func ToResponse(w WithItems) Response {
	items := make([]ItemAnswer, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, ItemAnswer{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			OwnerID:     it.OwnerID,
			RequestID:   w.Request.ID,
		})
	}
	return Response{
		ID:          w.Request.ID,
		Description: w.Request.Description,
		RequestorID: w.Request.RequestorID,
		Created:     w.Request.Created,
		Items:       items,
	}
}

func ToResponses(ws []WithItems) []Response {
	out := make([]Response, 0, len(ws))
	for _, w := range ws {
		out = append(out, ToResponse(w))
	}
	return out
}
