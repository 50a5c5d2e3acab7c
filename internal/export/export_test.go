package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go-recruit/internal/candidate"
	"go-recruit/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildPositionReportXLSX(t *testing.T) {
	data := PositionReportData{
		PositionTitle: "Paketleme Operatörü",
		CompanyName:   "Acme Tekstil",
		GeneratedAt:   time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
		Rows: []PositionReportRow{
			{Reference: "ADY-000001", FullName: "Ayşe Yılmaz", Phone: "0555", Email: "ayse@example.com", City: "İstanbul", ResultStatus: "MÜLAKAT"},
			{Reference: "ADY-000002", FullName: "Mehmet Demir", ResultStatus: "BEKLEMEDE"},
		},
	}

	raw, err := BuildPositionReportXLSX(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(reportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Tekstil - Paketleme Operatörü", title)

	header, err := f.GetCellValue(reportSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Ad Soyad", header)

	name, err := f.GetCellValue(reportSheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Ayşe Yılmaz", name)

	// Missing phone prints as a dash.
	phone, err := f.GetCellValue(reportSheet, "C6")
	require.NoError(t, err)
	assert.Equal(t, "-", phone)
}

func TestBuildSimpleResumePDF_Structure(t *testing.T) {
	raw, err := buildSimpleResumePDF([]string{"Ali Veli (ADY-000007)", "Telefon: 0555"})
	require.NoError(t, err)

	s := string(raw)
	assert.True(t, strings.HasPrefix(s, "%PDF-1.4"))
	assert.Contains(t, s, "/Count 1")
	assert.Contains(t, s, "Ali Veli \\(ADY-000007\\)")
	assert.True(t, strings.HasSuffix(s, "%%EOF"))
}

func TestBuildSimpleResumePDF_TransliteratesTurkish(t *testing.T) {
	raw, err := buildSimpleResumePDF([]string{"Ayşe Yılmaz", "Sehir: Kadıköy, Çengelköy"})
	require.NoError(t, err)

	s := string(raw)
	assert.Contains(t, s, "(Ayse Yilmaz) Tj")
	assert.Contains(t, s, "(Sehir: Kadikoy, Cengelkoy) Tj")
	assert.NotContains(t, s, "ş")
	assert.NotContains(t, s, "ö")
}

func TestBuildSimpleResumePDF_Paginates(t *testing.T) {
	lines := make([]string, pdfLinesPerPage+10)
	for i := range lines {
		lines[i] = "satır"
	}

	raw, err := buildSimpleResumePDF(lines)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "/Count 2")
}

func TestResumeLines_OmitsEmptySections(t *testing.T) {
	end := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	entry := &candidate.DirectoryEntryResponse{
		CandidateResponse: candidate.CandidateResponse{
			FirstName: "Ali", LastName: "Veli", Reference: "ADY-000007",
			BirthYear: 1990, City: "İstanbul",
		},
		Experiences: []resume.Experience{{
			Position: "Operatör", CompanyName: "Acme",
			StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
		}},
	}

	lines := resumeLines(entry)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "IS DENEYIMI")
	assert.NotContains(t, joined, "EGITIM")
	assert.NotContains(t, joined, "YETENEKLER")
	assert.NotContains(t, joined, "REFERANSLAR")
	// Missing email renders as a dash, never blank.
	assert.Contains(t, joined, "E-posta: -")
}
