package user

import "shareit/internal/pkg/apperror"

func errUserNotFound(id int64) error {
	return apperror.NotFound("user %d not found", id)
}

func errEmailTaken(email string) error {
	return apperror.Conflict("email %s is already registered", email)
}

var (
	errBlankName    = apperror.Validation("name must not be blank")
	errInvalidEmail = apperror.Validation("email is not a valid address")
)
