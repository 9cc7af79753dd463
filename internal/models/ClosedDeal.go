package models

import "gorm.io/gorm"

// ClosedDeal records a completed assignment. CommissionAmount is derived from
// the assignment fee at close time and never recomputed afterwards.
type ClosedDeal struct {
	gorm.Model
	PropertyID uint `json:"property_id" gorm:"index;not null"`
	SellerID   uint `json:"seller_id" gorm:"index;not null"`
	BuyerID    uint `json:"buyer_id" gorm:"index;not null"`

	AssignmentFee    int  `json:"assignment_fee"`
	CommissionAmount int  `json:"commission_amount"`
	CommissionPaid   bool `json:"commission_paid" gorm:"default:false"`

	ProofDocument string `json:"proof_document"`
}
