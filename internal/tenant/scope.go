package tenant

import "gorm.io/gorm"

// Scope restricts a query to one agency's rows. Every business table
// carries agency_id, so this is applied on all tenant-owned reads.
func Scope(agencyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("agency_id = ?", agencyID)
	}
}
