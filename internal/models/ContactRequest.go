package models

import "gorm.io/gorm"

// ContactRequest is a message from a user to a property's owner. The
// recipient is always the property owner at send time; self-contact is
// rejected by the service.
type ContactRequest struct {
	gorm.Model
	PropertyID  uint   `json:"property_id" gorm:"index;not null"`
	SenderID    uint   `json:"sender_id" gorm:"index;not null"`
	RecipientID uint   `json:"recipient_id" gorm:"index;not null"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`
}
