package crm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	crmerrors "go-recruit/internal/crm/errors"
	"go-recruit/internal/events"
	"go-recruit/internal/messaging/kafka"
	"go-recruit/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=crm_service.go -destination=mock/crm_service_mock.go -package=mock
type Service interface {
	CreateCompany(ctx context.Context, agencyID string, req CreateCompanyRequest) (CompanyResponse, error)
	GetCompany(ctx context.Context, agencyID string, id uuid.UUID) (CompanyResponse, error)
	UpdateCompany(ctx context.Context, agencyID string, id uuid.UUID, req UpdateCompanyRequest) (CompanyResponse, error)
	DeleteCompany(ctx context.Context, agencyID string, id uuid.UUID) error
	ListCompanies(ctx context.Context, agencyID, q string, page, size int) ([]CompanyResponse, int64, error)

	AddContact(ctx context.Context, agencyID string, companyID uuid.UUID, req CreateContactRequest) (ContactResponse, error)
	ListContacts(ctx context.Context, agencyID string, companyID uuid.UUID) ([]ContactResponse, error)
	DeleteContact(ctx context.Context, agencyID string, id uuid.UUID) error

	CreatePosition(ctx context.Context, agencyID string, req CreatePositionRequest) (PositionResponse, error)
	GetPosition(ctx context.Context, agencyID string, id uuid.UUID) (PositionResponse, error)
	UpdatePosition(ctx context.Context, agencyID string, id uuid.UUID, req UpdatePositionRequest) (PositionResponse, error)
	DeletePosition(ctx context.Context, agencyID string, id uuid.UUID) error
	ListPositions(ctx context.Context, agencyID string, companyID *uuid.UUID, page, size int) ([]PositionResponse, int64, error)
	AssignConsultant(ctx context.Context, agencyID string, positionID uuid.UUID, req AssignConsultantRequest) (PositionResponse, error)

	AddPoolCandidate(ctx context.Context, agencyID string, positionID uuid.UUID, req AddPoolCandidateRequest) (PoolEntryResponse, error)
	ListPool(ctx context.Context, agencyID string, positionID uuid.UUID) ([]PoolEntryResponse, error)
	UpdatePoolResult(ctx context.Context, agencyID string, entryID uuid.UUID, req UpdatePoolResultRequest) (PoolEntryResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("crm.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("crm.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

func (s *service) CreateCompany(ctx context.Context, agencyID string, req CreateCompanyRequest) (CompanyResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return CompanyResponse{}, crmerrors.ErrInvalidCRMID
	}

	c := &Company{
		ID:        uuid.New(),
		AgencyID:  agencyUUID,
		Name:      req.Name,
		TaxNumber: req.TaxNumber,
		City:      req.City,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	}
	if err := s.repo.CreateCompany(ctx, c); err != nil {
		return CompanyResponse{}, err
	}

	s.logger.Info("company created", zap.String("company_id", c.ID.String()))
	return toCompanyResponse(*c), nil
}

func (s *service) GetCompany(ctx context.Context, agencyID string, id uuid.UUID) (CompanyResponse, error) {
	c, err := s.repo.GetCompany(ctx, agencyID, id)
	if err != nil {
		return CompanyResponse{}, mapCRMError(err, crmerrors.ErrCompanyNotFound)
	}
	return toCompanyResponse(*c), nil
}

func (s *service) UpdateCompany(ctx context.Context, agencyID string, id uuid.UUID, req UpdateCompanyRequest) (CompanyResponse, error) {
	c, err := s.repo.GetCompany(ctx, agencyID, id)
	if err != nil {
		return CompanyResponse{}, mapCRMError(err, crmerrors.ErrCompanyNotFound)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.TaxNumber != nil {
		c.TaxNumber = *req.TaxNumber
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.repo.UpdateCompany(ctx, c); err != nil {
		return CompanyResponse{}, err
	}
	return toCompanyResponse(*c), nil
}

func (s *service) DeleteCompany(ctx context.Context, agencyID string, id uuid.UUID) error {
	if _, err := s.repo.GetCompany(ctx, agencyID, id); err != nil {
		return mapCRMError(err, crmerrors.ErrCompanyNotFound)
	}
	return s.repo.DeleteCompany(ctx, agencyID, id)
}

func (s *service) ListCompanies(ctx context.Context, agencyID, q string, page, size int) ([]CompanyResponse, int64, error) {
	rows, total, err := s.repo.ListCompanies(ctx, agencyID, q, page, size)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CompanyResponse, len(rows))
	for i, c := range rows {
		out[i] = toCompanyResponse(c)
	}
	return out, total, nil
}

func (s *service) AddContact(ctx context.Context, agencyID string, companyID uuid.UUID, req CreateContactRequest) (ContactResponse, error) {
	company, err := s.repo.GetCompany(ctx, agencyID, companyID)
	if err != nil {
		return ContactResponse{}, mapCRMError(err, crmerrors.ErrCompanyNotFound)
	}

	c := &CompanyContact{
		ID:        uuid.New(),
		AgencyID:  company.AgencyID,
		CompanyID: company.ID,
		FullName:  req.FullName,
		Title:     req.Title,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := s.repo.CreateContact(ctx, c); err != nil {
		return ContactResponse{}, err
	}
	return toContactResponse(*c), nil
}

func (s *service) ListContacts(ctx context.Context, agencyID string, companyID uuid.UUID) ([]ContactResponse, error) {
	rows, err := s.repo.ListContacts(ctx, agencyID, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]ContactResponse, len(rows))
	for i, c := range rows {
		out[i] = toContactResponse(c)
	}
	return out, nil
}

func (s *service) DeleteContact(ctx context.Context, agencyID string, id uuid.UUID) error {
	return s.repo.DeleteContact(ctx, agencyID, id)
}

func (s *service) CreatePosition(ctx context.Context, agencyID string, req CreatePositionRequest) (PositionResponse, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return PositionResponse{}, crmerrors.ErrInvalidCRMID
	}

	company, err := s.repo.GetCompany(ctx, agencyID, companyID)
	if err != nil {
		return PositionResponse{}, mapCRMError(err, crmerrors.ErrCompanyNotFound)
	}

	p := &JobPosition{
		ID:          uuid.New(),
		AgencyID:    company.AgencyID,
		CompanyID:   company.ID,
		Title:       req.Title,
		Description: req.Description,
		Quota:       req.Quota,
		IsOpen:      true,
	}
	if p.Quota == 0 {
		p.Quota = 1
	}
	if err := s.repo.CreatePosition(ctx, p); err != nil {
		return PositionResponse{}, err
	}

	s.logger.Info("position created",
		zap.String("position_id", p.ID.String()),
		zap.String("company_id", company.ID.String()),
	)
	return toPositionResponse(*p), nil
}

func (s *service) GetPosition(ctx context.Context, agencyID string, id uuid.UUID) (PositionResponse, error) {
	p, err := s.repo.GetPosition(ctx, agencyID, id)
	if err != nil {
		return PositionResponse{}, mapCRMError(err, crmerrors.ErrPositionNotFound)
	}
	return toPositionResponse(*p), nil
}

func (s *service) UpdatePosition(ctx context.Context, agencyID string, id uuid.UUID, req UpdatePositionRequest) (PositionResponse, error) {
	p, err := s.repo.GetPosition(ctx, agencyID, id)
	if err != nil {
		return PositionResponse{}, mapCRMError(err, crmerrors.ErrPositionNotFound)
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Quota != nil {
		p.Quota = *req.Quota
	}
	if req.IsOpen != nil {
		p.IsOpen = *req.IsOpen
	}

	if err := s.repo.UpdatePosition(ctx, p); err != nil {
		return PositionResponse{}, err
	}
	return toPositionResponse(*p), nil
}

// DeletePosition removes a position together with its candidate pool.
// Both deletes run in one transaction so a failure leaves no orphaned
// pool rows.
func (s *service) DeletePosition(ctx context.Context, agencyID string, id uuid.UUID) error {
	if _, err := s.repo.GetPosition(ctx, agencyID, id); err != nil {
		return mapCRMError(err, crmerrors.ErrPositionNotFound)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.DeletePoolByPosition(ctx, agencyID, id); err != nil {
			return err
		}
		return txRepo.DeletePosition(ctx, agencyID, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("position deleted with pool", zap.String("position_id", id.String()))
	return nil
}

func (s *service) ListPositions(ctx context.Context, agencyID string, companyID *uuid.UUID, page, size int) ([]PositionResponse, int64, error) {
	rows, total, err := s.repo.ListPositions(ctx, agencyID, companyID, page, size)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PositionResponse, len(rows))
	for i, p := range rows {
		out[i] = toPositionResponse(p)
	}
	return out, total, nil
}

// AssignConsultant puts a consultant on a position and queues the
// notification event in the same transaction as the assignment.
func (s *service) AssignConsultant(ctx context.Context, agencyID string, positionID uuid.UUID, req AssignConsultantRequest) (PositionResponse, error) {
	consultantID, err := uuid.Parse(req.ConsultantID)
	if err != nil {
		return PositionResponse{}, crmerrors.ErrInvalidCRMID
	}

	p, err := s.repo.GetPosition(ctx, agencyID, positionID)
	if err != nil {
		return PositionResponse{}, mapCRMError(err, crmerrors.ErrPositionNotFound)
	}

	company, err := s.repo.GetCompany(ctx, agencyID, p.CompanyID)
	if err != nil {
		return PositionResponse{}, mapCRMError(err, crmerrors.ErrCompanyNotFound)
	}

	p.ConsultantID = &consultantID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).UpdatePosition(ctx, p); err != nil {
			return err
		}
		return s.enqueueAssigned(ctx, tx, p, company.Name)
	})
	if err != nil {
		return PositionResponse{}, err
	}

	s.logger.Info("consultant assigned",
		zap.String("position_id", p.ID.String()),
		zap.String("consultant_id", consultantID.String()),
	)
	return toPositionResponse(*p), nil
}

func (s *service) AddPoolCandidate(ctx context.Context, agencyID string, positionID uuid.UUID, req AddPoolCandidateRequest) (PoolEntryResponse, error) {
	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return PoolEntryResponse{}, crmerrors.ErrInvalidCRMID
	}

	p, err := s.repo.GetPosition(ctx, agencyID, positionID)
	if err != nil {
		return PoolEntryResponse{}, mapCRMError(err, crmerrors.ErrPositionNotFound)
	}

	e := &PositionCandidate{
		ID:           uuid.New(),
		AgencyID:     p.AgencyID,
		PositionID:   p.ID,
		CandidateID:  candidateID,
		ResultStatus: ResultWaiting,
		Note:         req.Note,
	}
	if err := s.repo.AddPoolCandidate(ctx, e); err != nil {
		return PoolEntryResponse{}, mapCRMError(err, nil)
	}
	return toPoolEntryResponse(*e), nil
}

func (s *service) ListPool(ctx context.Context, agencyID string, positionID uuid.UUID) ([]PoolEntryResponse, error) {
	rows, err := s.repo.ListPool(ctx, agencyID, positionID)
	if err != nil {
		return nil, err
	}
	out := make([]PoolEntryResponse, len(rows))
	for i, e := range rows {
		out[i] = toPoolEntryResponse(e)
	}
	return out, nil
}

func (s *service) UpdatePoolResult(ctx context.Context, agencyID string, entryID uuid.UUID, req UpdatePoolResultRequest) (PoolEntryResponse, error) {
	if !ValidResultStatus(req.ResultStatus) {
		return PoolEntryResponse{}, crmerrors.ErrUnknownResultStatus
	}

	e, err := s.repo.GetPoolEntry(ctx, agencyID, entryID)
	if err != nil {
		return PoolEntryResponse{}, mapCRMError(err, crmerrors.ErrPoolEntryNotFound)
	}

	e.ResultStatus = req.ResultStatus
	if req.Note != "" {
		e.Note = req.Note
	}
	if err := s.repo.UpdatePoolEntry(ctx, e); err != nil {
		return PoolEntryResponse{}, err
	}
	return toPoolEntryResponse(*e), nil
}

func (s *service) enqueueAssigned(ctx context.Context, tx *gorm.DB, p *JobPosition, companyName string) error {
	payload, err := json.Marshal(events.PositionAssignedEvent{
		EventType:     "position.assigned",
		RequestID:     contextutil.GetRequestID(ctx),
		PositionID:    p.ID.String(),
		PositionTitle: p.Title,
		CompanyName:   companyName,
		ConsultantID:  p.ConsultantID.String(),
		AgencyID:      p.AgencyID.String(),
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return kafka.BindGormTx(s.outbox, tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "position",
		AggregateID:   p.ID.String(),
		EventType:     "position.assigned",
		Topic:         events.PositionAssignedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapCRMError(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "idx_crm_pool_position_candidate":
			return crmerrors.ErrCandidateAlreadyInPool
		}
	}
	return err
}
