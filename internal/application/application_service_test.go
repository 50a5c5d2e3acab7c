package application

import (
	"context"
	"testing"

	apperrors "go-recruit/internal/application/errors"
	"go-recruit/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeApplicationRepo struct {
	byID      map[uuid.UUID]*Application
	createErr error
	created   []*Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: map[uuid.UUID]*Application{}}
}

func (f *fakeApplicationRepo) WithTx(*gorm.DB) Repository { return f }

func (f *fakeApplicationRepo) Create(_ context.Context, a *Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	f.byID[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, _ string, id uuid.UUID) (*Application, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, a *Application) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) ListByCandidate(_ context.Context, _ string, candidateID uuid.UUID) ([]Application, error) {
	var out []Application
	for _, a := range f.byID {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJob(context.Context, string, uuid.UUID, string, int, int) ([]Application, int64, error) {
	return nil, 0, nil
}

type openGate struct{ err error }

func (g openGate) CanApply(context.Context, string, uuid.UUID, uuid.UUID) error { return g.err }

func setupAppTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, kafka.OutboxRepository) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, mock, kafka.NewOutboxRepository(db)
}

func TestService_Apply_Succeeds(t *testing.T) {
	gormDB, _, outbox := setupAppTestDB(t)
	repo := newFakeApplicationRepo()
	svc := NewService(gormDB, repo, outbox, openGate{})

	resp, err := svc.Apply(context.Background(), uuid.New().String(), uuid.New(), ApplyRequest{
		JobID: uuid.New().String(),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	require.Len(t, repo.created, 1)
}

func TestService_Apply_DuplicateMapsToConflict(t *testing.T) {
	gormDB, _, outbox := setupAppTestDB(t)
	repo := newFakeApplicationRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_applications_candidate_job"}
	svc := NewService(gormDB, repo, outbox, openGate{})

	_, err := svc.Apply(context.Background(), uuid.New().String(), uuid.New(), ApplyRequest{
		JobID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)
}

func TestService_Apply_ClosedJobRejected(t *testing.T) {
	gormDB, _, outbox := setupAppTestDB(t)
	svc := NewService(gormDB, newFakeApplicationRepo(), outbox, openGate{err: apperrors.ErrJobNotOpen})

	_, err := svc.Apply(context.Background(), uuid.New().String(), uuid.New(), ApplyRequest{
		JobID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)
}

func TestService_UpdateStatus_AnyToAnyAllowed(t *testing.T) {
	gormDB, mock, outbox := setupAppTestDB(t)
	repo := newFakeApplicationRepo()
	agencyID := uuid.New()
	id := uuid.New()
	repo.byID[id] = &Application{
		ID: id, AgencyID: agencyID,
		CandidateID: uuid.New(), JobID: uuid.New(),
		Status: StatusRejected,
	}

	// Rejected straight to started: no transition table in this domain.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewService(gormDB, repo, outbox, openGate{})
	resp, err := svc.UpdateStatus(context.Background(), agencyID.String(), id, UpdateStatusRequest{Status: StatusStarted})
	require.NoError(t, err)
	assert.Equal(t, StatusStarted, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	gormDB, _, outbox := setupAppTestDB(t)
	svc := NewService(gormDB, newFakeApplicationRepo(), outbox, openGate{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New().String(), uuid.New(), UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownStatus)
}
