package database

import "gorm.io/gorm"

// FilterActivo returns a scope that filters by the activo flag when the
// caller supplied one; a nil filter leaves the query untouched.
func FilterActivo(activo *bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if activo == nil {
			return db
		}
		return db.Where("activo = ?", *activo)
	}
}

// Paginate applies offset/limit pagination. Page numbers start at 1;
// perPage is capped at 100.
func Paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}
