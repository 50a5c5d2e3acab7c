package cvbank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBankRepo struct {
	rowsA []LegacyEntryA
	rowsB []LegacyEntryB
}

func (f *fakeBankRepo) CountA(context.Context) (int64, error) { return int64(len(f.rowsA)), nil }
func (f *fakeBankRepo) CountB(context.Context) (int64, error) { return int64(len(f.rowsB)), nil }

func (f *fakeBankRepo) PageA(_ context.Context, offset, limit int) ([]LegacyEntryA, error) {
	if offset >= len(f.rowsA) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.rowsA) {
		end = len(f.rowsA)
	}
	return f.rowsA[offset:end], nil
}

func (f *fakeBankRepo) PageB(_ context.Context, offset, limit int) ([]LegacyEntryB, error) {
	if offset >= len(f.rowsB) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.rowsB) {
		end = len(f.rowsB)
	}
	return f.rowsB[offset:end], nil
}

func (f *fakeBankRepo) SearchA(_ context.Context, term string) ([]LegacyEntryA, error) {
	var out []LegacyEntryA
	for _, r := range f.rowsA {
		if r.Pozisyon == term || r.Sehir == term {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBankRepo) SearchB(_ context.Context, term string) ([]LegacyEntryB, error) {
	var out []LegacyEntryB
	for _, r := range f.rowsB {
		if r.Meslek == term || r.Il == term {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestAdapters_UnifyBothVocabularies(t *testing.T) {
	a := adaptEntryA(LegacyEntryA{
		ID: 7, Isim: " Hasan ", Soyisim: "Koç",
		EPosta: "hasan@example.com", Telefon: "05551112233",
		Sehir: "İstanbul", Ilce: "Kadıköy", Pozisyon: "Şoför",
	})
	assert.Equal(t, BankEntry{
		ID: 7, Source: SourceA, FullName: "Hasan Koç",
		Email: "hasan@example.com", Phone: "05551112233",
		City: "İstanbul", District: "Kadıköy", Position: "Şoför",
	}, a)

	b := adaptEntryB(LegacyEntryB{
		ID: 3, TamIsim: "Elif Arslan", Email: "elif@example.com",
		TelNo: "05440001122", Il: "Ankara", Ilce: "Çankaya", Meslek: "Aşçı",
	})
	assert.Equal(t, BankEntry{
		ID: 3, Source: SourceB, FullName: "Elif Arslan",
		Email: "elif@example.com", Phone: "05440001122",
		City: "Ankara", District: "Çankaya", Position: "Aşçı",
	}, b)
}

func seedRepo() *fakeBankRepo {
	repo := &fakeBankRepo{}
	for i := int64(1); i <= 5; i++ {
		repo.rowsA = append(repo.rowsA, LegacyEntryA{ID: i, Isim: "A", Soyisim: "Kayıt", Sehir: "İstanbul", Ilce: "Kadıköy"})
	}
	for i := int64(1); i <= 4; i++ {
		repo.rowsB = append(repo.rowsB, LegacyEntryB{ID: i, TamIsim: "B Kayıt", Il: "İstanbul", Ilce: "Şişli"})
	}
	return repo
}

func TestBrowse_PagesAcrossTableBoundary(t *testing.T) {
	svc := NewService(seedRepo())

	// Page 2 of size 4 covers rows 5..8: last A row plus first three B.
	items, total, err := svc.Browse(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 9, total)
	require.Len(t, items, 4)
	assert.Equal(t, SourceA, items[0].Source)
	assert.Equal(t, SourceB, items[1].Source)
	assert.Equal(t, SourceB, items[2].Source)
	assert.Equal(t, SourceB, items[3].Source)
}

func TestBrowse_FirstPageOnlyTableA(t *testing.T) {
	svc := NewService(seedRepo())

	items, total, err := svc.Browse(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, total)
	require.Len(t, items, 3)
	for _, e := range items {
		assert.Equal(t, SourceA, e.Source)
	}
}

func TestSearch_MergesAndPagesInMemory(t *testing.T) {
	repo := seedRepo()
	svc := NewService(repo)

	items, total, err := svc.Search(context.Background(), "İstanbul", "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 9, total)
	assert.Len(t, items, 9)

	paged, total, err := svc.Search(context.Background(), "İstanbul", "", 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 9, total)
	assert.Len(t, paged, 4)
}

func TestSearch_IstanbulSideNarrows(t *testing.T) {
	svc := NewService(seedRepo())

	asian, total, err := svc.Search(context.Background(), "İstanbul", "Asya", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	for _, e := range asian {
		assert.Equal(t, "Kadıköy", e.District)
	}

	european, total, err := svc.Search(context.Background(), "İstanbul", "Avrupa", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	for _, e := range european {
		assert.Equal(t, "Şişli", e.District)
	}
}
