// Package istanbul maps the city's districts onto the Anatolian and
// European sides. Candidate and CV bank filtering both narrow by side,
// which only makes sense when the selected city is Istanbul.
package istanbul

import "go-recruit/internal/shared/turkish"

const (
	SideAsia   = "Asya"
	SideEurope = "Avrupa"
)

var asianDistricts = []string{
	"Adalar", "Ataşehir", "Beykoz", "Çekmeköy", "Kadıköy", "Kartal",
	"Maltepe", "Pendik", "Sancaktepe", "Sultanbeyli", "Şile", "Tuzla",
	"Ümraniye", "Üsküdar",
}

var europeanDistricts = []string{
	"Arnavutköy", "Avcılar", "Bağcılar", "Bahçelievler", "Bakırköy",
	"Başakşehir", "Bayrampaşa", "Beşiktaş", "Beylikdüzü", "Beyoğlu",
	"Büyükçekmece", "Çatalca", "Esenler", "Esenyurt", "Eyüpsultan",
	"Fatih", "Gaziosmanpaşa", "Güngören", "Kağıthane", "Küçükçekmece",
	"Sarıyer", "Silivri", "Sultangazi", "Şişli", "Zeytinburnu",
}

// SideDistricts returns the district list of one side, or nil when the
// side name is not recognized.
func SideDistricts(side string) []string {
	switch turkish.Fold(side) {
	case turkish.Fold(SideAsia):
		return asianDistricts
	case turkish.Fold(SideEurope):
		return europeanDistricts
	}
	return nil
}

// OnSide reports whether a district belongs to the given side.
func OnSide(district, side string) bool {
	want := turkish.Fold(district)
	for _, d := range SideDistricts(side) {
		if turkish.Fold(d) == want {
			return true
		}
	}
	return false
}
