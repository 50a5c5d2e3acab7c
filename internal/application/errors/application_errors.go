package errors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)

	ErrDuplicateApplication = apperror.New(
		apperror.CodeConflict,
		"Candidate has already applied to this job",
		http.StatusConflict,
	)

	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown application status",
		http.StatusBadRequest,
	)

	ErrJobNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"Job posting is not open for applications",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid application id",
		http.StatusBadRequest,
	)
)
