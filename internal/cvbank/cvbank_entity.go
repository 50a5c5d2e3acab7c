package cvbank

// The CV bank is a frozen import from the agency's pre-2015 system.
// Two tables with different column vocabularies hold the same kind of
// row; neither is ever written to from here.
type LegacyEntryA struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Isim     string `gorm:"column:isim"`
	Soyisim  string `gorm:"column:soyisim"`
	EPosta   string `gorm:"column:e_posta"`
	Telefon  string `gorm:"column:telefon"`
	Sehir    string `gorm:"column:sehir"`
	Ilce     string `gorm:"column:ilce"`
	Pozisyon string `gorm:"column:pozisyon"`
}

func (LegacyEntryA) TableName() string { return "cv_havuzu_a" }

type LegacyEntryB struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	TamIsim string `gorm:"column:tam_isim"`
	Email   string `gorm:"column:email"`
	TelNo   string `gorm:"column:tel_no"`
	Il      string `gorm:"column:il"`
	Ilce    string `gorm:"column:ilce"`
	Meslek  string `gorm:"column:meslek"`
}

func (LegacyEntryB) TableName() string { return "cv_havuzu_b" }

const (
	SourceA = "A"
	SourceB = "B"
)

// BankEntry is the unified shape the rest of the system sees. Legacy
// column names never leave this package.
type BankEntry struct {
	ID       int64  `json:"id"`
	Source   string `json:"source"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	District string `json:"district"`
	Position string `json:"position"`
}
