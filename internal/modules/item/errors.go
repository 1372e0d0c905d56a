package item

import "shareit/internal/pkg/apperror"

func errUserNotFound(id int64) error {
	return apperror.NotFound("user %d not found", id)
}

func errItemNotFound(id int64) error {
	return apperror.NotFound("item %d not found", id)
}

func errRequestNotFound(id int64) error {
	return apperror.NotFound("request %d not found", id)
}

var (
	errEmptyComment = apperror.Validation("comment text must not be empty")
	errNotEligible  = apperror.Validation("user is not eligible to comment on this item")
)
