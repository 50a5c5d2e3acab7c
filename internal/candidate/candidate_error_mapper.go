package candidate

import (
	"errors"

	candidateerrors "go-recruit/internal/candidate/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepoError translates driver-level failures into the module's
// error vocabulary so handlers never inspect SQL state codes.
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidateerrors.ErrCandidateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "idx_candidates_agency_email":
			return candidateerrors.ErrEmailAlreadyExists
		}
	}

	return err
}
