package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// ContactService handles messages between users and property owners.
type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// CreateContactRequest sends a message to a property's owner. The recipient
// is resolved from the property at send time; contacting your own listing is
// rejected.
func (s *ContactService) CreateContactRequest(requester *Identity, propertyID uint, message string) (*models.ContactRequest, error) {
	if err := RequireVerified(requester); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, invalidInput("message is required")
	}

	var prop models.Property
	if err := s.db.First(&prop, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("property", propertyID)
		}
		return nil, err
	}
	if prop.UserID == requester.UserID {
		return nil, invalidInput("cannot contact your own listing")
	}

	request := &models.ContactRequest{
		PropertyID:  propertyID,
		SenderID:    requester.UserID,
		RecipientID: prop.UserID,
		Message:     message,
		IsRead:      false,
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// ListContactRequests returns requests the user sent or received.
func (s *ContactService) ListContactRequests(requester *Identity) ([]models.ContactRequest, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	var requests []models.ContactRequest
	err := s.db.Where("sender_id = ? OR recipient_id = ?", requester.UserID, requester.UserID).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// MarkRead flags a request as read. Recipient only.
func (s *ContactService) MarkRead(requester *Identity, requestID uint) (*models.ContactRequest, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}

	var request models.ContactRequest
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("contact request", requestID)
		}
		return nil, err
	}
	if request.RecipientID != requester.UserID {
		return nil, forbidden("contact request %d was not sent to you", requestID)
	}

	request.IsRead = true
	if err := s.db.Save(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}
