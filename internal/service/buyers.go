package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// BuyerService stores a cash buyer's stated preferences.
type BuyerService struct {
	db *gorm.DB
}

func NewBuyerService(db *gorm.DB) *BuyerService {
	return &BuyerService{db: db}
}

// BuyerCriteriaInput is the payload for stating preferences.
type BuyerCriteriaInput struct {
	Locations        []string
	PropertyTypes    []string
	MinPrice         int
	MaxPrice         int
	FinancingType    string
	ExitStrategy     string
	ClosingTimeframe string
}

// UpsertCriteria creates the requester's criteria, or updates them if a row
// already exists. At most one row per user.
func (s *BuyerService) UpsertCriteria(requester *Identity, input BuyerCriteriaInput) (*models.BuyerCriteria, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	if input.FinancingType == "" {
		return nil, invalidInput("financing_type is required")
	}

	var criteria models.BuyerCriteria
	err := s.db.Where("user_id = ?", requester.UserID).First(&criteria).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	criteria.UserID = requester.UserID
	criteria.Locations = input.Locations
	criteria.PropertyTypes = input.PropertyTypes
	criteria.MinPrice = input.MinPrice
	criteria.MaxPrice = input.MaxPrice
	criteria.FinancingType = input.FinancingType
	criteria.ExitStrategy = input.ExitStrategy
	criteria.ClosingTimeframe = input.ClosingTimeframe

	if err := s.db.Save(&criteria).Error; err != nil {
		return nil, err
	}
	return &criteria, nil
}

// GetCriteria returns the requester's criteria, or nil when none are stated.
func (s *BuyerService) GetCriteria(requester *Identity) (*models.BuyerCriteria, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}

	var criteria models.BuyerCriteria
	err := s.db.Where("user_id = ?", requester.UserID).First(&criteria).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &criteria, nil
}
