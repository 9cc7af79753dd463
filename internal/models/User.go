package models

import "gorm.io/gorm"

// Role values carried by User.Role.
const (
	RoleWholesaler = "wholesaler"
	RoleCashBuyer  = "cash_buyer"
	RoleAdmin      = "admin"
)

// Verification status values carried by User.VerificationStatus.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"` // "wholesaler", "cash_buyer", "admin"

	// IsVerified must always mirror VerificationStatus == "verified".
	// Both fields are only written together, by the verification service.
	IsVerified         bool   `json:"is_verified" gorm:"default:false"`
	VerificationStatus string `json:"verification_status" gorm:"default:pending"`
}
