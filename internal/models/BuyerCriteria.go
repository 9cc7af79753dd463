package models

import "gorm.io/gorm"

// BuyerCriteria captures a cash buyer's stated preferences. At most one row
// per user; a second submission updates the existing row.
type BuyerCriteria struct {
	gorm.Model
	UserID        uint     `json:"user_id" gorm:"uniqueIndex;not null"`
	Locations     []string `json:"locations" gorm:"serializer:json"`
	PropertyTypes []string `json:"property_types" gorm:"serializer:json"`
	MinPrice      int      `json:"min_price"`
	MaxPrice      int      `json:"max_price"`
	FinancingType string   `json:"financing_type"` // "cash", "financing"
	ExitStrategy  string   `json:"exit_strategy"`  // "flip", "buy_and_hold", etc.

	ClosingTimeframe string `json:"closing_timeframe"` // "30_days", "60_days", etc.
}
