package candidate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	candidateerrors "go-recruit/internal/candidate/errors"
	"go-recruit/internal/resume"
	"go-recruit/internal/shared/counter"
	"go-recruit/internal/shared/paging"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	counterTypeCandidate = "candidate_reference"
	referenceFormat      = "ADY-%06d"

	filterOptionsTTL = 10 * time.Minute
)

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, agencyID string, req CreateCandidateRequest) (CandidateResponse, error)
	GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*DirectoryEntryResponse, error)
	Update(ctx context.Context, agencyID string, id uuid.UUID, req UpdateCandidateRequest) (CandidateResponse, error)
	Delete(ctx context.Context, agencyID string, id uuid.UUID) error
	Directory(ctx context.Context, agencyID string, f FilterState, page, size int) ([]DirectoryEntryResponse, int, error)
	FilterOptions(ctx context.Context, agencyID string) (FilterOptions, error)
	SetAvatar(ctx context.Context, agencyID string, id uuid.UUID, url string) error
}

type service struct {
	repo       Repository
	reconciler *resume.Reconciler
	counter    counter.Repository
	cache      *redis.Client
	group      singleflight.Group
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(repo Repository, reconciler *resume.Reconciler, counterRepo counter.Repository, cache *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("candidate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.service")
	}
	return &service{
		repo:       repo,
		reconciler: reconciler,
		counter:    counterRepo,
		cache:      cache,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) Create(ctx context.Context, agencyID string, req CreateCandidateRequest) (CandidateResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return CandidateResponse{}, candidateerrors.ErrInvalidCandidateID
	}

	seq, err := s.counter.GetNextValue(ctx, agencyID, counterTypeCandidate)
	if err != nil {
		s.logger.Error("candidate reference counter failed", zap.Error(err))
		return CandidateResponse{}, candidateerrors.ErrReferenceGeneration
	}

	c := &Candidate{
		ID:                 uuid.New(),
		AgencyID:           agencyUUID,
		Reference:          fmt.Sprintf(referenceFormat, seq),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		BirthYear:          req.BirthYear,
		Gender:             req.Gender,
		Nationality:        req.Nationality,
		City:               req.City,
		District:           req.District,
		Address:            req.Address,
		DisabilityCategory: req.DisabilityCategory,
		DisabilityRate:     req.DisabilityRate,
		DriverLicense:      req.DriverLicense,
		Summary:            req.Summary,
		IsActive:           true,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return CandidateResponse{}, mapRepoError(err)
	}

	s.invalidateFilterOptions(ctx, agencyID)
	s.logger.Info("candidate created",
		zap.String("candidate_id", c.ID.String()),
		zap.String("reference", c.Reference),
	)
	return toCandidateResponse(*c, s.now()), nil
}

func (s *service) GetByID(ctx context.Context, agencyID string, id uuid.UUID) (*DirectoryEntryResponse, error) {
	c, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	bundle, err := s.reconciler.Reconcile(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	resp := toDirectoryEntryResponse(DirectoryEntry{Candidate: *c, Resume: bundle}, s.now())
	return &resp, nil
}

func (s *service) Update(ctx context.Context, agencyID string, id uuid.UUID, req UpdateCandidateRequest) (CandidateResponse, error) {
	c, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return CandidateResponse{}, mapRepoError(err)
	}

	applyUpdate(c, req)
	if err := s.repo.Update(ctx, c); err != nil {
		return CandidateResponse{}, mapRepoError(err)
	}

	s.invalidateFilterOptions(ctx, agencyID)
	return toCandidateResponse(*c, s.now()), nil
}

func (s *service) Delete(ctx context.Context, agencyID string, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, agencyID, id); err != nil {
		return mapRepoError(err)
	}
	if err := s.repo.Delete(ctx, agencyID, id); err != nil {
		return mapRepoError(err)
	}

	s.invalidateFilterOptions(ctx, agencyID)
	s.logger.Info("candidate deleted", zap.String("candidate_id", id.String()))
	return nil
}

// Directory loads the agency's active pool, merges resumes, runs the
// filter predicates in memory and pages the result. Ordering comes
// from the repository (last name, first name) and is preserved by the
// filter, so page boundaries are stable across identical requests.
func (s *service) Directory(ctx context.Context, agencyID string, f FilterState, page, size int) ([]DirectoryEntryResponse, int, error) {
	candidates, err := s.repo.ListActive(ctx, agencyID)
	if err != nil {
		return nil, 0, mapRepoError(err)
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.ID
	}

	bundles, err := s.reconciler.ReconcileBulk(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]DirectoryEntry, len(candidates))
	for i, c := range candidates {
		entries[i] = DirectoryEntry{Candidate: c, Resume: bundles[c.ID]}
	}

	now := s.now()
	matched := Apply(entries, f, now)
	total := len(matched)

	pageItems := paging.Slice(matched, page, size)
	out := make([]DirectoryEntryResponse, len(pageItems))
	for i, entry := range pageItems {
		out[i] = toDirectoryEntryResponse(entry, now)
	}
	return out, total, nil
}

// FilterOptions is served from Redis; on a miss a single caller per
// agency rebuilds it while concurrent requests wait on the flight.
func (s *service) FilterOptions(ctx context.Context, agencyID string) (FilterOptions, error) {
	key := filterOptionsKey(agencyID)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var opts FilterOptions
			if err := json.Unmarshal([]byte(raw), &opts); err == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.buildFilterOptions(ctx, agencyID)
	})
	if err != nil {
		return FilterOptions{}, err
	}
	opts := v.(FilterOptions)

	if s.cache != nil {
		if raw, err := json.Marshal(opts); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), filterOptionsTTL).Err(); err != nil {
				s.logger.Warn("filter options cache write failed", zap.Error(err))
			}
		}
	}
	return opts, nil
}

func (s *service) buildFilterOptions(ctx context.Context, agencyID string) (FilterOptions, error) {
	var opts FilterOptions
	var err error

	if opts.Cities, err = s.repo.DistinctValues(ctx, agencyID, "city"); err != nil {
		return FilterOptions{}, err
	}
	if opts.Districts, err = s.repo.DistinctValues(ctx, agencyID, "district"); err != nil {
		return FilterOptions{}, err
	}
	if opts.Nationalities, err = s.repo.DistinctValues(ctx, agencyID, "nationality"); err != nil {
		return FilterOptions{}, err
	}
	if opts.DisabilityCategories, err = s.repo.DistinctValues(ctx, agencyID, "disability_category"); err != nil {
		return FilterOptions{}, err
	}

	// Education levels live in the resume tables, not the candidate row.
	// The known ladder is static, so it is served as-is.
	opts.EducationLevels = []string{"İlköğretim", "Lise", "Önlisans", "Lisans", "Yüksek Lisans", "Doktora"}
	return opts, nil
}

func (s *service) SetAvatar(ctx context.Context, agencyID string, id uuid.UUID, url string) error {
	c, err := s.repo.GetByID(ctx, agencyID, id)
	if err != nil {
		return mapRepoError(err)
	}
	c.AvatarURL = url
	return mapRepoError(s.repo.Update(ctx, c))
}

func (s *service) invalidateFilterOptions(ctx context.Context, agencyID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, filterOptionsKey(agencyID)).Err(); err != nil {
		s.logger.Warn("filter options cache invalidation failed", zap.Error(err))
	}
}

func filterOptionsKey(agencyID string) string {
	return "candidate:filter_options:" + agencyID
}

func applyUpdate(c *Candidate, req UpdateCandidateRequest) {
	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.BirthYear != nil {
		c.BirthYear = *req.BirthYear
	}
	if req.Gender != nil {
		c.Gender = *req.Gender
	}
	if req.Nationality != nil {
		c.Nationality = *req.Nationality
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.District != nil {
		c.District = *req.District
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.DisabilityCategory != nil {
		c.DisabilityCategory = *req.DisabilityCategory
	}
	if req.DisabilityRate != nil {
		c.DisabilityRate = *req.DisabilityRate
	}
	if req.DriverLicense != nil {
		c.DriverLicense = *req.DriverLicense
	}
	if req.Summary != nil {
		c.Summary = *req.Summary
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
}

func toDirectoryEntryResponse(entry DirectoryEntry, now time.Time) DirectoryEntryResponse {
	return DirectoryEntryResponse{
		CandidateResponse: toCandidateResponse(entry.Candidate, now),
		Educations:        entry.Resume.Educations,
		Experiences:       entry.Resume.Experiences,
		Languages:         entry.Resume.Languages,
		Skills:            entry.Resume.Skills,
		Certifications:    entry.Resume.Certifications,
		References:        entry.Resume.References,
	}
}
