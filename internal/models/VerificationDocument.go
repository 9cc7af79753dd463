package models

import "gorm.io/gorm"

// Document types accepted for verification review.
const (
	DocumentTypeID           = "id"
	DocumentTypeProofOfFunds = "proof_of_funds"
	DocumentTypeContract     = "contract"
)

// Review status values carried by VerificationDocument.Status.
const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// VerificationDocument is a proof artifact uploaded by a user for admin
// review. A user may hold several documents of the same type; completeness
// checks only care that at least one of each required type exists.
type VerificationDocument struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	DocumentType string `json:"document_type"` // "id", "proof_of_funds", "contract"
	FilePath     string `json:"file_path"`
	Status       string `json:"status" gorm:"default:pending"`
}
