package cvbank

import "strings"

// Adapters from the two legacy vocabularies to BankEntry. Table A
// stores the name split in two columns, table B stores it joined.

func adaptEntryA(row LegacyEntryA) BankEntry {
	return BankEntry{
		ID:       row.ID,
		Source:   SourceA,
		FullName: strings.TrimSpace(strings.TrimSpace(row.Isim) + " " + strings.TrimSpace(row.Soyisim)),
		Email:    strings.TrimSpace(row.EPosta),
		Phone:    strings.TrimSpace(row.Telefon),
		City:     strings.TrimSpace(row.Sehir),
		District: strings.TrimSpace(row.Ilce),
		Position: strings.TrimSpace(row.Pozisyon),
	}
}

func adaptEntryB(row LegacyEntryB) BankEntry {
	return BankEntry{
		ID:       row.ID,
		Source:   SourceB,
		FullName: strings.TrimSpace(row.TamIsim),
		Email:    strings.TrimSpace(row.Email),
		Phone:    strings.TrimSpace(row.TelNo),
		City:     strings.TrimSpace(row.Il),
		District: strings.TrimSpace(row.Ilce),
		Position: strings.TrimSpace(row.Meslek),
	}
}

func adaptAllA(rows []LegacyEntryA) []BankEntry {
	out := make([]BankEntry, len(rows))
	for i, r := range rows {
		out[i] = adaptEntryA(r)
	}
	return out
}

func adaptAllB(rows []LegacyEntryB) []BankEntry {
	out := make([]BankEntry, len(rows))
	for i, r := range rows {
		out[i] = adaptEntryB(r)
	}
	return out
}
