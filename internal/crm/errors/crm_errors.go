package errors

import (
	"net/http"

	"go-recruit/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)

	ErrPoolEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate is not in this position's pool",
		http.StatusNotFound,
	)

	ErrCandidateAlreadyInPool = apperror.New(
		apperror.CodeConflict,
		"Candidate is already in this position's pool",
		http.StatusConflict,
	)

	ErrUnknownResultStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown result status",
		http.StatusBadRequest,
	)

	ErrInvalidCRMID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid id",
		http.StatusBadRequest,
	)
)
