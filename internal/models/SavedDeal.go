package models

import "gorm.io/gorm"

// SavedDeal is a buyer's bookmark of a property. Duplicate saves of the same
// property are allowed.
type SavedDeal struct {
	gorm.Model
	UserID     uint `json:"user_id" gorm:"index;not null"`
	PropertyID uint `json:"property_id" gorm:"index;not null"`
}
