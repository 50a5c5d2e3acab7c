package candidate

import (
	"testing"
	"time"

	"go-recruit/internal/resume"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filterClock = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func entry(c Candidate, b resume.Bundle) DirectoryEntry {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return DirectoryEntry{Candidate: c, Resume: b}
}

func samplePool() []DirectoryEntry {
	return []DirectoryEntry{
		entry(Candidate{
			FirstName: "Ayşe", LastName: "Yılmaz", Email: "ayse@example.com",
			BirthYear: 1990, Gender: "Kadın", City: "İstanbul", District: "Kadıköy",
			DisabilityCategory: "İşitme Engeli", Summary: "Deneyimli yazılım geliştirici",
		}, resume.Bundle{
			Skills: []resume.Skill{{Name: "Java"}, {Name: "SQL"}},
			Experiences: []resume.Experience{{
				Position:  "Yazılım Geliştirici",
				StartDate: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
				IsCurrent: true,
			}},
			Languages: []resume.Language{{Name: "İngilizce", Level: "İleri"}},
		}),
		entry(Candidate{
			FirstName: "Mehmet", LastName: "Demir", Email: "mehmet@example.com",
			BirthYear: 1985, Gender: "Erkek", City: "İstanbul", District: "Beşiktaş",
			DisabilityCategory: "Ortopedik Engel",
		}, resume.Bundle{
			Skills: []resume.Skill{{Name: "Muhasebe"}},
			Educations: []resume.Education{{
				School: "İstanbul Üniversitesi", Department: "İşletme", Level: "Lisans",
			}},
		}),
		entry(Candidate{
			FirstName: "Fatma", LastName: "Kaya", Email: "fatma@example.com",
			BirthYear: 2000, Gender: "K", City: "Ankara", District: "Çankaya",
		}, resume.Bundle{}),
	}
}

func TestApply_EmptyStateMatchesAll(t *testing.T) {
	pool := samplePool()
	out := Apply(pool, FilterState{}, filterClock)
	assert.Len(t, out, len(pool))
}

func TestApply_Idempotent(t *testing.T) {
	pool := samplePool()
	f := FilterState{City: "İstanbul"}

	once := Apply(pool, f, filterClock)
	twice := Apply(once, f, filterClock)
	assert.Equal(t, once, twice)
}

func TestApply_StackingOnlyNarrows(t *testing.T) {
	pool := samplePool()

	base := Apply(pool, FilterState{City: "İstanbul"}, filterClock)
	narrowed := Apply(pool, FilterState{City: "İstanbul", Gender: "Kadın"}, filterClock)

	assert.LessOrEqual(t, len(narrowed), len(base))
	for _, e := range narrowed {
		assert.Contains(t, base, e)
	}
}

func TestApply_KeywordHitsSkillsAndSummary(t *testing.T) {
	out := Apply(samplePool(), FilterState{Keyword: "java"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)

	out = Apply(samplePool(), FilterState{Keyword: "yazılım"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)
}

func TestApply_AgeRangeFromBirthYear(t *testing.T) {
	// Born 1990, clock year 2024: age 34.
	out := Apply(samplePool(), FilterState{AgeMin: 34, AgeMax: 34}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, 1990, out[0].Candidate.BirthYear)

	out = Apply(samplePool(), FilterState{AgeMin: 35}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Mehmet", out[0].Candidate.FirstName)
}

func TestApply_UnknownBirthYearFailsAgePredicates(t *testing.T) {
	pool := []DirectoryEntry{
		entry(Candidate{FirstName: "Veli", LastName: "Çelik"}, resume.Bundle{}),
	}
	assert.Empty(t, Apply(pool, FilterState{AgeMin: 18}, filterClock))
	assert.Empty(t, Apply(pool, FilterState{AgeMax: 65}, filterClock))
}

func TestApply_IstanbulSide(t *testing.T) {
	out := Apply(samplePool(), FilterState{IstanbulSide: "Asya"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Kadıköy", out[0].Candidate.District)

	out = Apply(samplePool(), FilterState{IstanbulSide: "Avrupa"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Beşiktaş", out[0].Candidate.District)

	// Side filter never matches outside Istanbul.
	out = Apply(samplePool(), FilterState{City: "Ankara", IstanbulSide: "Asya"}, filterClock)
	assert.Empty(t, out)
}

func TestApply_GenderSynonyms(t *testing.T) {
	for _, q := range []string{"Kadın", "kadın", "K", "female", "Kız"} {
		out := Apply(samplePool(), FilterState{Gender: q}, filterClock)
		assert.Len(t, out, 2, "query %q", q)
	}
	for _, q := range []string{"Erkek", "E", "male", "Bay"} {
		out := Apply(samplePool(), FilterState{Gender: q}, filterClock)
		require.Len(t, out, 1, "query %q", q)
		assert.Equal(t, "Mehmet", out[0].Candidate.FirstName)
	}
}

func TestApply_GenderMultiSelect(t *testing.T) {
	// Selecting both genders ORs the tokens instead of folding the
	// whole selection into one literal.
	out := Apply(samplePool(), FilterState{Gender: "Erkek,Kadın"}, filterClock)
	assert.Len(t, out, 3)

	// Each token still normalizes through the synonym sets.
	out = Apply(samplePool(), FilterState{Gender: "Bay, Kız"}, filterClock)
	assert.Len(t, out, 3)

	// A multi-select with no matching token excludes, as before.
	out = Apply(samplePool(), FilterState{Gender: "Bay,Bilinmiyor"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Mehmet", out[0].Candidate.FirstName)

	// Degenerate separators carry no active token.
	out = Apply(samplePool(), FilterState{Gender: " , "}, filterClock)
	assert.Len(t, out, 3)
}

func TestApply_SkillListRequiresAllTokens(t *testing.T) {
	out := Apply(samplePool(), FilterState{Skills: "java, sql"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)

	out = Apply(samplePool(), FilterState{Skills: "java, muhasebe"}, filterClock)
	assert.Empty(t, out)
}

func TestApply_LanguageWithLevel(t *testing.T) {
	out := Apply(samplePool(), FilterState{Language: "İngilizce", LanguageLevel: "İleri"}, filterClock)
	assert.Len(t, out, 1)

	out = Apply(samplePool(), FilterState{Language: "İngilizce", LanguageLevel: "Başlangıç"}, filterClock)
	assert.Empty(t, out)
}

func TestApply_ExperiencePredicates(t *testing.T) {
	employed := true
	out := Apply(samplePool(), FilterState{CurrentlyEmployed: &employed}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)

	out = Apply(samplePool(), FilterState{MinExperienceYears: 5}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)

	out = Apply(samplePool(), FilterState{MinExperienceYears: 20}, filterClock)
	assert.Empty(t, out)
}

func TestApply_EducationPredicates(t *testing.T) {
	out := Apply(samplePool(), FilterState{University: "istanbul üniversitesi"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Mehmet", out[0].Candidate.FirstName)

	out = Apply(samplePool(), FilterState{EducationLevel: "Lisans", Department: "işletme"}, filterClock)
	assert.Len(t, out, 1)
}

func TestApply_DisabilityCategory(t *testing.T) {
	out := Apply(samplePool(), FilterState{DisabilityCategory: "işitme engeli"}, filterClock)
	require.Len(t, out, 1)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)
}

func TestApply_OrderPreserved(t *testing.T) {
	pool := samplePool()
	out := Apply(pool, FilterState{City: "İstanbul"}, filterClock)
	require.Len(t, out, 2)
	assert.Equal(t, "Ayşe", out[0].Candidate.FirstName)
	assert.Equal(t, "Mehmet", out[1].Candidate.FirstName)
}
