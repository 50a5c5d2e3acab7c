package crm

import (
	"context"
	"testing"

	crmerrors "go-recruit/internal/crm/errors"
	"go-recruit/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeCRMRepo struct {
	companies map[uuid.UUID]*Company
	positions map[uuid.UUID]*JobPosition
	pool      map[uuid.UUID]*PositionCandidate

	poolDeletedFor     []uuid.UUID
	positionsDeleted   []uuid.UUID
	failPositionDelete error
	addPoolErr         error
}

func newFakeCRMRepo() *fakeCRMRepo {
	return &fakeCRMRepo{
		companies: map[uuid.UUID]*Company{},
		positions: map[uuid.UUID]*JobPosition{},
		pool:      map[uuid.UUID]*PositionCandidate{},
	}
}

func (f *fakeCRMRepo) WithTx(*gorm.DB) Repository { return f }

func (f *fakeCRMRepo) CreateCompany(_ context.Context, c *Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCRMRepo) GetCompany(_ context.Context, _ string, id uuid.UUID) (*Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCRMRepo) UpdateCompany(_ context.Context, c *Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCRMRepo) DeleteCompany(_ context.Context, _ string, id uuid.UUID) error {
	delete(f.companies, id)
	return nil
}

func (f *fakeCRMRepo) ListCompanies(context.Context, string, string, int, int) ([]Company, int64, error) {
	return nil, 0, nil
}

func (f *fakeCRMRepo) CreateContact(context.Context, *CompanyContact) error { return nil }
func (f *fakeCRMRepo) ListContacts(context.Context, string, uuid.UUID) ([]CompanyContact, error) {
	return nil, nil
}
func (f *fakeCRMRepo) DeleteContact(context.Context, string, uuid.UUID) error { return nil }

func (f *fakeCRMRepo) CreatePosition(_ context.Context, p *JobPosition) error {
	f.positions[p.ID] = p
	return nil
}

func (f *fakeCRMRepo) GetPosition(_ context.Context, _ string, id uuid.UUID) (*JobPosition, error) {
	p, ok := f.positions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeCRMRepo) UpdatePosition(_ context.Context, p *JobPosition) error {
	f.positions[p.ID] = p
	return nil
}

func (f *fakeCRMRepo) DeletePosition(_ context.Context, _ string, id uuid.UUID) error {
	if f.failPositionDelete != nil {
		return f.failPositionDelete
	}
	f.positionsDeleted = append(f.positionsDeleted, id)
	delete(f.positions, id)
	return nil
}

func (f *fakeCRMRepo) ListPositions(context.Context, string, *uuid.UUID, int, int) ([]JobPosition, int64, error) {
	return nil, 0, nil
}

func (f *fakeCRMRepo) AddPoolCandidate(_ context.Context, e *PositionCandidate) error {
	if f.addPoolErr != nil {
		return f.addPoolErr
	}
	f.pool[e.ID] = e
	return nil
}

func (f *fakeCRMRepo) GetPoolEntry(_ context.Context, _ string, id uuid.UUID) (*PositionCandidate, error) {
	e, ok := f.pool[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeCRMRepo) UpdatePoolEntry(_ context.Context, e *PositionCandidate) error {
	f.pool[e.ID] = e
	return nil
}

func (f *fakeCRMRepo) ListPool(context.Context, string, uuid.UUID) ([]PositionCandidate, error) {
	return nil, nil
}

func (f *fakeCRMRepo) DeletePoolByPosition(_ context.Context, _ string, positionID uuid.UUID) error {
	f.poolDeletedFor = append(f.poolDeletedFor, positionID)
	for id, e := range f.pool {
		if e.PositionID == positionID {
			delete(f.pool, id)
		}
	}
	return nil
}

func setupCRMTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, kafka.OutboxRepository) {
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

func seedPosition(repo *fakeCRMRepo) (agencyID uuid.UUID, position *JobPosition) {
	agencyID = uuid.New()
	company := &Company{ID: uuid.New(), AgencyID: agencyID, Name: "Acme Tekstil"}
	repo.companies[company.ID] = company

	position = &JobPosition{
		ID: uuid.New(), AgencyID: agencyID, CompanyID: company.ID,
		Title: "Paketleme Operatörü", Quota: 3, IsOpen: true,
	}
	repo.positions[position.ID] = position
	return agencyID, position
}

func TestService_DeletePosition_CascadesPool(t *testing.T) {
	gormDB, mock, outbox := setupCRMTestDB(t)
	repo := newFakeCRMRepo()
	agencyID, position := seedPosition(repo)

	entry := &PositionCandidate{
		ID: uuid.New(), AgencyID: agencyID,
		PositionID: position.ID, CandidateID: uuid.New(),
		ResultStatus: ResultWaiting,
	}
	repo.pool[entry.ID] = entry

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(gormDB, repo, outbox)
	require.NoError(t, svc.DeletePosition(context.Background(), agencyID.String(), position.ID))

	assert.Equal(t, []uuid.UUID{position.ID}, repo.poolDeletedFor)
	assert.Equal(t, []uuid.UUID{position.ID}, repo.positionsDeleted)
	assert.Empty(t, repo.pool)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_DeletePosition_RollbackKeepsPool(t *testing.T) {
	gormDB, mock, outbox := setupCRMTestDB(t)
	repo := newFakeCRMRepo()
	agencyID, position := seedPosition(repo)
	repo.failPositionDelete = assert.AnError

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := NewService(gormDB, repo, outbox)
	err := svc.DeletePosition(context.Background(), agencyID.String(), position.ID)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_AssignConsultant_EmitsEvent(t *testing.T) {
	gormDB, mock, outbox := setupCRMTestDB(t)
	repo := newFakeCRMRepo()
	agencyID, position := seedPosition(repo)
	consultantID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewService(gormDB, repo, outbox)
	resp, err := svc.AssignConsultant(context.Background(), agencyID.String(), position.ID, AssignConsultantRequest{
		ConsultantID: consultantID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ConsultantID)
	assert.Equal(t, consultantID, *resp.ConsultantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_AddPoolCandidate_DuplicateMapsToConflict(t *testing.T) {
	gormDB, _, outbox := setupCRMTestDB(t)
	repo := newFakeCRMRepo()
	agencyID, position := seedPosition(repo)
	repo.addPoolErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_crm_pool_position_candidate"}

	svc := NewService(gormDB, repo, outbox)
	_, err := svc.AddPoolCandidate(context.Background(), agencyID.String(), position.ID, AddPoolCandidateRequest{
		CandidateID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, crmerrors.ErrCandidateAlreadyInPool)
}

func TestService_UpdatePoolResult_RejectsUnknownStatus(t *testing.T) {
	gormDB, _, outbox := setupCRMTestDB(t)
	svc := NewService(gormDB, newFakeCRMRepo(), outbox)

	_, err := svc.UpdatePoolResult(context.Background(), uuid.New().String(), uuid.New(), UpdatePoolResultRequest{
		ResultStatus: "ARŞİV",
	})
	assert.ErrorIs(t, err, crmerrors.ErrUnknownResultStatus)
}

func TestService_UpdatePoolResult_TurkishStatuses(t *testing.T) {
	gormDB, _, outbox := setupCRMTestDB(t)
	repo := newFakeCRMRepo()
	agencyID, position := seedPosition(repo)

	entry := &PositionCandidate{
		ID: uuid.New(), AgencyID: agencyID,
		PositionID: position.ID, CandidateID: uuid.New(),
		ResultStatus: ResultWaiting,
	}
	repo.pool[entry.ID] = entry

	svc := NewService(gormDB, repo, outbox)
	for _, status := range []string{ResultReviewed, ResultInterview, ResultOffer, ResultAccepted, ResultRejected} {
		resp, err := svc.UpdatePoolResult(context.Background(), agencyID.String(), entry.ID, UpdatePoolResultRequest{
			ResultStatus: status,
		})
		require.NoError(t, err)
		assert.Equal(t, status, resp.ResultStatus)
	}
}
