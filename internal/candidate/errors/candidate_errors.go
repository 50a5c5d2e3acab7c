package errors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A candidate with this email already exists",
		http.StatusConflict,
	)

	ErrReferenceGeneration = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate candidate reference",
		http.StatusInternalServerError,
	)

	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate id",
		http.StatusBadRequest,
	)
)
