package specification

import "gorm.io/gorm"

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type AdminsOnly struct{}

func (s AdminsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_admin = ?", true)
}

// WithProfile preloads the gamification profile row.
type WithProfile struct{}

func (s WithProfile) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Profile")
}
