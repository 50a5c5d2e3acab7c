package errors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job posting not found",
		http.StatusNotFound,
	)

	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job id",
		http.StatusBadRequest,
	)

	ErrJobInactive = apperror.New(
		apperror.CodeInvalidState,
		"Job posting is no longer open",
		http.StatusUnprocessableEntity,
	)
)
