package job

import (
	"context"
	"testing"

	"go-recruit/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeJobRepo struct {
	byID    map[uuid.UUID]*Job
	active  []Job
	created []*Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: map[uuid.UUID]*Job{}}
}

func (f *fakeJobRepo) WithTx(*gorm.DB) Repository { return f }

func (f *fakeJobRepo) Create(_ context.Context, j *Job) error {
	f.created = append(f.created, j)
	f.byID[j.ID] = j
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, _ string, id uuid.UUID) (*Job, error) {
	j, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j *Job) error {
	f.byID[j.ID] = j
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, _ string, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeJobRepo) List(context.Context, string, string, int, int) ([]Job, int64, error) {
	return f.active, int64(len(f.active)), nil
}

func (f *fakeJobRepo) ListActive(context.Context, string) ([]Job, error) {
	return f.active, nil
}

type fakeProfile struct{ category string }

func (f fakeProfile) DisabilityCategory(context.Context, string, uuid.UUID) (string, error) {
	return f.category, nil
}

func setupTxDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, mock
}

func TestService_Create_WritesOutboxInSameTx(t *testing.T) {
	gormDB, mock := setupTxDB(t)
	repo := newFakeJobRepo()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	dbConn, err := gormDB.DB()
	require.NoError(t, err)
	outbox := kafka.NewOutboxRepository(dbConn)

	svc := NewService(gormDB, repo, outbox, fakeProfile{})
	resp, err := svc.Create(context.Background(), uuid.New().String(), uuid.New().String(), CreateJobRequest{
		Title:       "Çağrı Merkezi Temsilcisi",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 1, resp.Quota)
	require.Len(t, repo.created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_EmitsDeletedEvent(t *testing.T) {
	gormDB, mock := setupTxDB(t)
	repo := newFakeJobRepo()
	agencyID := uuid.New()
	id := uuid.New()
	repo.byID[id] = &Job{ID: id, AgencyID: agencyID, Title: "Depo Görevlisi", IsActive: true}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	dbConn, err := gormDB.DB()
	require.NoError(t, err)

	svc := NewService(gormDB, repo, kafka.NewOutboxRepository(dbConn), fakeProfile{})
	require.NoError(t, svc.Delete(context.Background(), agencyID.String(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ListOpenFor_HidesUnsuitablePostings(t *testing.T) {
	gormDB, _ := setupTxDB(t)
	repo := newFakeJobRepo()
	repo.active = []Job{
		{ID: uuid.New(), Title: "Açık Pozisyon", SuitableCategories: "", IsActive: true},
		{ID: uuid.New(), Title: "İşitme Uyumlu", SuitableCategories: "İşitme Engeli", IsActive: true},
		{ID: uuid.New(), Title: "Ortopedik Uyumlu", SuitableCategories: "Ortopedik Engel", IsActive: true},
	}

	dbConn, err := gormDB.DB()
	require.NoError(t, err)

	svc := NewService(gormDB, repo, kafka.NewOutboxRepository(dbConn), fakeProfile{category: "İşitme Engeli"})
	items, err := svc.ListOpenFor(context.Background(), uuid.New().String(), uuid.New())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Açık Pozisyon", items[0].Title)
	assert.Equal(t, "İşitme Uyumlu", items[1].Title)
}
