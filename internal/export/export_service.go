package export

import (
	"context"
	"fmt"
	"time"

	"go-recruit/internal/candidate"
	"go-recruit/internal/crm"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	// PositionReportXLSX renders a position's candidate pool as a
	// spreadsheet. Returns the file bytes and a download filename.
	PositionReportXLSX(ctx context.Context, agencyID string, positionID uuid.UUID) ([]byte, string, error)
	// ResumePDF renders a candidate's merged resume as a printable PDF.
	ResumePDF(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]byte, string, error)
}

type service struct {
	crm        crm.Service
	candidates candidate.Service
	candRepo   candidate.Repository
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(crmService crm.Service, candidateService candidate.Service, candRepo candidate.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{
		crm:        crmService,
		candidates: candidateService,
		candRepo:   candRepo,
		logger:     l,
		now:        time.Now,
	}
}

func (s *service) PositionReportXLSX(ctx context.Context, agencyID string, positionID uuid.UUID) ([]byte, string, error) {
	position, err := s.crm.GetPosition(ctx, agencyID, positionID)
	if err != nil {
		return nil, "", err
	}
	company, err := s.crm.GetCompany(ctx, agencyID, position.CompanyID)
	if err != nil {
		return nil, "", err
	}
	pool, err := s.crm.ListPool(ctx, agencyID, positionID)
	if err != nil {
		return nil, "", err
	}

	ids := make([]uuid.UUID, len(pool))
	for i, e := range pool {
		ids[i] = e.CandidateID
	}
	candidates, err := s.candRepo.ListByIDs(ctx, agencyID, ids)
	if err != nil {
		return nil, "", err
	}
	byID := make(map[uuid.UUID]candidate.Candidate, len(candidates))
	for _, c := range candidates {
		byID[c.ID] = c
	}

	rows := make([]PositionReportRow, len(pool))
	for i, e := range pool {
		row := PositionReportRow{ResultStatus: e.ResultStatus, Note: e.Note}
		if c, ok := byID[e.CandidateID]; ok {
			row.Reference = c.Reference
			row.FullName = c.FullName()
			row.Phone = c.Phone
			row.Email = c.Email
			row.City = c.City
		}
		rows[i] = row
	}

	data, err := BuildPositionReportXLSX(PositionReportData{
		PositionTitle: position.Title,
		CompanyName:   company.Name,
		GeneratedAt:   s.now(),
		Rows:          rows,
	})
	if err != nil {
		s.logger.Error("position report build failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("pozisyon-raporu-%s.xlsx", positionID)
	s.logger.Info("position report exported",
		zap.String("position_id", positionID.String()),
		zap.Int("rows", len(rows)),
	)
	return data, filename, nil
}

func (s *service) ResumePDF(ctx context.Context, agencyID string, candidateID uuid.UUID) ([]byte, string, error) {
	entry, err := s.candidates.GetByID(ctx, agencyID, candidateID)
	if err != nil {
		return nil, "", err
	}

	data, err := buildSimpleResumePDF(resumeLines(entry))
	if err != nil {
		s.logger.Error("resume pdf build failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("ozgecmis-%s.pdf", entry.Reference)
	return data, filename, nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// resumeLines lays the merged resume out as one text column. Sections
// without any entries are omitted entirely rather than printed empty.
func resumeLines(entry *candidate.DirectoryEntryResponse) []string {
	lines := []string{
		fmt.Sprintf("%s %s  (%s)", entry.FirstName, entry.LastName, entry.Reference),
		fmt.Sprintf("E-posta: %s   Telefon: %s", orDash(entry.Email), orDash(entry.Phone)),
		fmt.Sprintf("Sehir: %s / %s   Dogum Yili: %d", orDash(entry.City), orDash(entry.District), entry.BirthYear),
		fmt.Sprintf("Engel Durumu: %s (%%%d)", orDash(entry.DisabilityCategory), entry.DisabilityRate),
		"",
	}

	if entry.Summary != "" {
		lines = append(lines, "OZET", entry.Summary, "")
	}

	if len(entry.Experiences) > 0 {
		lines = append(lines, "IS DENEYIMI")
		for _, exp := range entry.Experiences {
			end := "devam ediyor"
			if exp.EndDate != nil && !exp.IsCurrent {
				end = exp.EndDate.Format("01.2006")
			}
			lines = append(lines, fmt.Sprintf("- %s, %s (%s - %s)",
				orDash(exp.Position), orDash(exp.CompanyName),
				exp.StartDate.Format("01.2006"), end))
		}
		lines = append(lines, "")
	}

	if len(entry.Educations) > 0 {
		lines = append(lines, "EGITIM")
		for _, edu := range entry.Educations {
			years := fmt.Sprintf("%d", edu.StartYear)
			if edu.EndYear != nil {
				years = fmt.Sprintf("%d - %d", edu.StartYear, *edu.EndYear)
			}
			lines = append(lines, fmt.Sprintf("- %s, %s, %s (%s)",
				orDash(edu.School), orDash(edu.Department), orDash(edu.Level), years))
		}
		lines = append(lines, "")
	}

	if len(entry.Languages) > 0 {
		lines = append(lines, "YABANCI DIL")
		for _, lang := range entry.Languages {
			lines = append(lines, fmt.Sprintf("- %s (%s)", lang.Name, orDash(lang.Level)))
		}
		lines = append(lines, "")
	}

	if len(entry.Skills) > 0 {
		lines = append(lines, "YETENEKLER")
		for _, skill := range entry.Skills {
			lines = append(lines, "- "+skill.Name)
		}
		lines = append(lines, "")
	}

	if len(entry.Certifications) > 0 {
		lines = append(lines, "SERTIFIKALAR")
		for _, crt := range entry.Certifications {
			lines = append(lines, fmt.Sprintf("- %s, %s (%d)", crt.Name, orDash(crt.Issuer), crt.Year))
		}
		lines = append(lines, "")
	}

	if len(entry.References) > 0 {
		lines = append(lines, "REFERANSLAR")
		for _, ref := range entry.References {
			lines = append(lines, fmt.Sprintf("- %s, %s, %s", ref.FullName, orDash(ref.Company), orDash(ref.Phone)))
		}
	}

	return lines
}
