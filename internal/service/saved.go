package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// SavedDealService manages a user's bookmarked properties. Saving the same
// property twice simply creates a second bookmark.
type SavedDealService struct {
	db *gorm.DB
}

func NewSavedDealService(db *gorm.DB) *SavedDealService {
	return &SavedDealService{db: db}
}

// SaveDeal bookmarks a property for the requester.
func (s *SavedDealService) SaveDeal(requester *Identity, propertyID uint) (*models.SavedDeal, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}

	var prop models.Property
	if err := s.db.First(&prop, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("property", propertyID)
		}
		return nil, err
	}

	saved := &models.SavedDeal{
		UserID:     requester.UserID,
		PropertyID: propertyID,
	}
	if err := s.db.Create(saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// ListSavedDeals returns the requester's bookmarks.
func (s *SavedDealService) ListSavedDeals(requester *Identity) ([]models.SavedDeal, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	var saved []models.SavedDeal
	if err := s.db.Where("user_id = ?", requester.UserID).Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteSavedDeal removes one of the requester's own bookmarks.
func (s *SavedDealService) DeleteSavedDeal(requester *Identity, savedDealID uint) error {
	if err := RequireAuthenticated(requester); err != nil {
		return err
	}

	var saved models.SavedDeal
	if err := s.db.First(&saved, savedDealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("saved deal", savedDealID)
		}
		return err
	}
	if saved.UserID != requester.UserID {
		return forbidden("saved deal %d belongs to another user", savedDealID)
	}

	return s.db.Delete(&saved).Error
}
