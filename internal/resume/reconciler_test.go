package resume

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	educations     map[string][]Education
	experiences    map[string][]Experience
	languages      map[string][]Language
	skills         map[string][]Skill
	certifications map[string][]Certification
	references     map[string][]Reference
	failTable      string
}

func (f *fakeRepo) check(table string) error {
	if f.failTable != "" && f.failTable == table {
		return errors.New("relation does not exist")
	}
	return nil
}

func (f *fakeRepo) Educations(_ context.Context, table string, _ []uuid.UUID) ([]Education, error) {
	return f.educations[table], f.check(table)
}
func (f *fakeRepo) Experiences(_ context.Context, table string, _ []uuid.UUID) ([]Experience, error) {
	return f.experiences[table], f.check(table)
}
func (f *fakeRepo) Languages(_ context.Context, table string, _ []uuid.UUID) ([]Language, error) {
	return f.languages[table], f.check(table)
}
func (f *fakeRepo) Skills(_ context.Context, table string, _ []uuid.UUID) ([]Skill, error) {
	return f.skills[table], f.check(table)
}
func (f *fakeRepo) Certifications(_ context.Context, table string, _ []uuid.UUID) ([]Certification, error) {
	return f.certifications[table], f.check(table)
}
func (f *fakeRepo) References(_ context.Context, table string, _ []uuid.UUID) ([]Reference, error) {
	return f.references[table], f.check(table)
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		educations:     map[string][]Education{},
		experiences:    map[string][]Experience{},
		languages:      map[string][]Language{},
		skills:         map[string][]Skill{},
		certifications: map[string][]Certification{},
		references:     map[string][]Reference{},
	}
}

func TestReconcile_MergesBothGenerations(t *testing.T) {
	candID := uuid.New()
	legacyID := uuid.New()
	currentID := uuid.New()

	repo := newFakeRepo()
	repo.educations[TableEducationLegacy] = []Education{
		{ID: &legacyID, CandidateID: candID, School: "Anadolu Üniversitesi", Level: "Lisans"},
	}
	repo.educations[TableEducationCurrent] = []Education{
		{ID: &currentID, CandidateID: candID, School: "Marmara Üniversitesi", Level: "Yüksek Lisans"},
	}

	bundle, err := NewReconciler(repo).Reconcile(context.Background(), candID)
	require.NoError(t, err)
	require.Len(t, bundle.Educations, 2)
}

func TestReconcile_SharedIDKeptOnce(t *testing.T) {
	candID := uuid.New()
	sharedID := uuid.New()

	repo := newFakeRepo()
	repo.skills[TableSkillLegacy] = []Skill{
		{ID: &sharedID, CandidateID: candID, Name: "Java (eski kayıt)"},
	}
	repo.skills[TableSkillCurrent] = []Skill{
		{ID: &sharedID, CandidateID: candID, Name: "Java"},
	}

	bundle, err := NewReconciler(repo).Reconcile(context.Background(), candID)
	require.NoError(t, err)
	require.Len(t, bundle.Skills, 1)
	assert.Equal(t, "Java", bundle.Skills[0].Name)
}

func TestReconcile_NilIDsNeverCollapse(t *testing.T) {
	candID := uuid.New()

	repo := newFakeRepo()
	repo.languages[TableLanguageLegacy] = []Language{
		{CandidateID: candID, Name: "İngilizce", Level: "Orta"},
		{CandidateID: candID, Name: "Almanca", Level: "Başlangıç"},
	}
	repo.languages[TableLanguageCurrent] = []Language{
		{CandidateID: candID, Name: "İngilizce", Level: "İleri"},
	}

	bundle, err := NewReconciler(repo).Reconcile(context.Background(), candID)
	require.NoError(t, err)
	assert.Len(t, bundle.Languages, 3)
}

func TestReconcile_FailedSectionFailsAll(t *testing.T) {
	candID := uuid.New()

	repo := newFakeRepo()
	repo.failTable = TableExperienceLegacy
	repo.educations[TableEducationCurrent] = []Education{
		{CandidateID: candID, School: "İstanbul Üniversitesi"},
	}

	_, err := NewReconciler(repo).Reconcile(context.Background(), candID)
	require.Error(t, err)
}

func TestReconcileBulk_PartitionsByCandidate(t *testing.T) {
	candA := uuid.New()
	candB := uuid.New()

	repo := newFakeRepo()
	repo.experiences[TableExperienceCurrent] = []Experience{
		{CandidateID: candA, CompanyName: "Acme", Position: "Operatör"},
		{CandidateID: candB, CompanyName: "Globex", Position: "Muhasebeci"},
		{CandidateID: candB, CompanyName: "Initech", Position: "Sekreter"},
	}

	bundles, err := NewReconciler(repo).ReconcileBulk(context.Background(), []uuid.UUID{candA, candB})
	require.NoError(t, err)
	assert.Len(t, bundles[candA].Experiences, 1)
	assert.Len(t, bundles[candB].Experiences, 2)
}

func TestReconcileBulk_EmptyBundleForCandidateWithoutRows(t *testing.T) {
	candID := uuid.New()

	bundles, err := NewReconciler(newFakeRepo()).ReconcileBulk(context.Background(), []uuid.UUID{candID})
	require.NoError(t, err)

	bundle, ok := bundles[candID]
	require.True(t, ok)
	assert.Empty(t, bundle.Educations)
	assert.Empty(t, bundle.Skills)
}

func TestBundle_TotalExperienceYears(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	endOfFirst := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)

	bundle := Bundle{Experiences: []Experience{
		{StartDate: past, EndDate: &endOfFirst},
		{StartDate: endOfFirst, IsCurrent: true},
	}}

	assert.Equal(t, 6, bundle.TotalExperienceYears(now))
	assert.True(t, bundle.CurrentlyEmployed())
}
