package integrity

import "gorm.io/gorm"

// Visible is the tombstone filter applied to every normal read. Records
// with is_deleted = true stay in storage but are hidden from listings,
// lookups and reference checks.
func Visible() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", false)
	}
}
