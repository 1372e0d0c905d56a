package booking

import "shareit/internal/pkg/apperror"

func errUserNotFound(id int64) error {
	return apperror.NotFound("user %d not found", id)
}

func errItemNotFound(id int64) error {
	return apperror.NotFound("item %d not found", id)
}

func errBookingNotFound(id int64) error {
	return apperror.NotFound("booking %d not found", id)
}
