package service

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// DealService finalizes assignments and tracks the platform commission.
type DealService struct {
	db *gorm.DB
}

func NewDealService(db *gorm.DB) *DealService {
	return &DealService{db: db}
}

// Commission computes the platform fee on an assignment fee with half-up
// rounding to the nearest whole currency unit.
func Commission(assignmentFee int) int {
	return int(math.Round(float64(assignmentFee) * config.CommissionRate()))
}

// CloseDealInput is the payload for closing a deal.
type CloseDealInput struct {
	PropertyID    uint
	BuyerID       uint
	AssignmentFee int
	ProofDocument string
}

// CloseDeal records a completed assignment. Only the verified listing owner
// may close; the property flips to closed and the ClosedDeal row is created
// in the same transaction. Re-closing a closed property is a Conflict.
func (s *DealService) CloseDeal(requester *Identity, input CloseDealInput) (*models.ClosedDeal, error) {
	if err := RequireVerified(requester); err != nil {
		return nil, err
	}
	if input.ProofDocument == "" {
		return nil, invalidInput("proof document is required")
	}
	if input.BuyerID == 0 {
		return nil, invalidInput("buyer is required")
	}
	if input.AssignmentFee <= 0 {
		return nil, invalidInput("assignment_fee must be positive")
	}

	var prop models.Property
	if err := s.db.First(&prop, input.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("property", input.PropertyID)
		}
		return nil, err
	}
	if prop.UserID != requester.UserID {
		return nil, forbidden("only the listing owner may close property %d", input.PropertyID)
	}
	if prop.Status == models.PropertyClosed {
		return nil, conflict("property %d is already closed", input.PropertyID)
	}

	deal := &models.ClosedDeal{
		PropertyID:       input.PropertyID,
		SellerID:         requester.UserID,
		BuyerID:          input.BuyerID,
		AssignmentFee:    input.AssignmentFee,
		CommissionAmount: Commission(input.AssignmentFee),
		ProofDocument:    input.ProofDocument,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&prop).Update("status", models.PropertyClosed).Error; err != nil {
			return err
		}
		return tx.Create(deal).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"property_id": input.PropertyID,
		"seller_id":   requester.UserID,
		"buyer_id":    input.BuyerID,
		"commission":  deal.CommissionAmount,
	}).Info("deal closed")
	return deal, nil
}

// MarkCommissionPaid records the seller's attestation that the commission was
// paid. It is not a verified payment capture.
func (s *DealService) MarkCommissionPaid(requester *Identity, dealID uint) (*models.ClosedDeal, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}

	var deal models.ClosedDeal
	if err := s.db.First(&deal, dealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("closed deal", dealID)
		}
		return nil, err
	}
	if deal.SellerID != requester.UserID {
		return nil, forbidden("closed deal %d belongs to another seller", dealID)
	}

	deal.CommissionPaid = true
	if err := s.db.Save(&deal).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// ListDeals returns deals the requester participated in as seller or buyer.
func (s *DealService) ListDeals(requester *Identity) ([]models.ClosedDeal, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	var deals []models.ClosedDeal
	err := s.db.Where("seller_id = ? OR buyer_id = ?", requester.UserID, requester.UserID).
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}
