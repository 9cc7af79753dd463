package models

import "gorm.io/gorm"

// Listing status values carried by Property.Status.
const (
	PropertyAvailable     = "available"
	PropertyUnderContract = "under_contract"
	PropertyClosed        = "closed"
)

// Property is a wholesaler's assignable purchase contract. IsApproved is an
// orthogonal visibility gate, not part of the status machine: an unapproved
// property is only visible to its owner and admins.
type Property struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	PropertyType string `json:"property_type"` // "single_family", "multi_family", etc.

	ContractPrice int `json:"contract_price"`
	ARV           int `json:"arv"` // After Repair Value
	RepairCost    int `json:"repair_cost"`
	AssignmentFee int `json:"assignment_fee"`

	Notes            string   `json:"notes"`
	Images           []string `json:"images" gorm:"serializer:json"`
	ContractDocument string   `json:"contract_document"`

	IsApproved bool   `json:"is_approved" gorm:"default:false"`
	Status     string `json:"status" gorm:"default:available"` // "available", "under_contract", "closed"
}
