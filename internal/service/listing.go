package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// ListingService controls property creation, visibility and status
// transitions. The status machine is
// available -> under_contract -> closed, with closing also allowed straight
// from available. IsApproved is an orthogonal visibility gate toggled by
// admins only.
type ListingService struct {
	db *gorm.DB
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{db: db}
}

// PropertyInput is the payload for a new listing. Monetary figures are whole
// currency units.
type PropertyInput struct {
	Title            string
	Address          string
	City             string
	State            string
	ZipCode          string
	PropertyType     string
	ContractPrice    int
	ARV              int
	RepairCost       int
	AssignmentFee    int
	Notes            string
	Images           []string
	ContractDocument string
}

// PropertyFilter composes by exact-match AND; the price bounds are range
// predicates over the contract price. Zero values mean "no constraint".
type PropertyFilter struct {
	PropertyType string
	State        string
	City         string
	MinPrice     int
	MaxPrice     int
}

// CreateProperty creates a listing for a verified wholesaler. New listings
// always start unapproved and available.
func (s *ListingService) CreateProperty(requester *Identity, input PropertyInput) (*models.Property, error) {
	if err := RequireVerified(requester); err != nil {
		return nil, err
	}
	if err := RequireRole(requester, models.RoleWholesaler); err != nil {
		return nil, err
	}
	if input.ContractDocument == "" {
		return nil, invalidInput("contract document is required")
	}
	if input.ContractPrice <= 0 {
		return nil, invalidInput("contract_price must be positive")
	}
	if input.ARV <= 0 {
		return nil, invalidInput("arv must be positive")
	}
	if input.RepairCost < 0 {
		return nil, invalidInput("repair_cost must not be negative")
	}
	if input.AssignmentFee <= 0 {
		return nil, invalidInput("assignment_fee must be positive")
	}

	prop := &models.Property{
		UserID:           requester.UserID,
		Title:            input.Title,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		ZipCode:          input.ZipCode,
		PropertyType:     input.PropertyType,
		ContractPrice:    input.ContractPrice,
		ARV:              input.ARV,
		RepairCost:       input.RepairCost,
		AssignmentFee:    input.AssignmentFee,
		Notes:            input.Notes,
		Images:           input.Images,
		ContractDocument: input.ContractDocument,
		IsApproved:       false,
		Status:           models.PropertyAvailable,
	}
	if err := s.db.Create(prop).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"property_id": prop.ID,
		"user_id":     requester.UserID,
	}).Info("property listed")
	return prop, nil
}

// ListProperties applies the filter and, for everyone but admins, forces the
// approval gate regardless of what the caller asked for.
func (s *ListingService) ListProperties(requester *Identity, filter PropertyFilter) ([]models.Property, error) {
	q := s.db.Model(&models.Property{})
	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}
	if filter.State != "" {
		q = q.Where("state = ?", filter.State)
	}
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.MinPrice > 0 {
		q = q.Where("contract_price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("contract_price <= ?", filter.MaxPrice)
	}
	if !requester.IsAdmin() {
		q = q.Where("is_approved = ?", true)
	}

	var props []models.Property
	if err := q.Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

// ListMine returns the requester's own listings, approved or not.
func (s *ListingService) ListMine(requester *Identity) ([]models.Property, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	var props []models.Property
	if err := s.db.Where("user_id = ?", requester.UserID).Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

// AllProperties returns every listing without a guard. Console-only.
func (s *ListingService) AllProperties() ([]models.Property, error) {
	var props []models.Property
	if err := s.db.Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

// GetProperty returns a listing if it is approved, or if the requester is
// the owner or an admin.
func (s *ListingService) GetProperty(requester *Identity, propertyID uint) (*models.Property, error) {
	var prop models.Property
	if err := s.db.First(&prop, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("property", propertyID)
		}
		return nil, err
	}
	if !prop.IsApproved && !requester.Owns(prop.UserID) && !requester.IsAdmin() {
		return nil, forbidden("property %d is awaiting approval", propertyID)
	}
	return &prop, nil
}

// PropertyPatch updates only the fields that are set. Status and approval
// are deliberately absent; they move through their own operations.
type PropertyPatch struct {
	Title         *string
	Address       *string
	City          *string
	State         *string
	ZipCode       *string
	PropertyType  *string
	ContractPrice *int
	ARV           *int
	RepairCost    *int
	AssignmentFee *int
	Notes         *string
}

// UpdateProperty applies a patch as the owner or an admin. UpdatedAt is
// refreshed on every save.
func (s *ListingService) UpdateProperty(requester *Identity, propertyID uint, patch PropertyPatch) (*models.Property, error) {
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
	if !requester.Owns(prop.UserID) && !requester.IsAdmin() {
		return nil, forbidden("property %d belongs to another user", propertyID)
	}

	if patch.Title != nil {
		prop.Title = *patch.Title
	}
	if patch.Address != nil {
		prop.Address = *patch.Address
	}
	if patch.City != nil {
		prop.City = *patch.City
	}
	if patch.State != nil {
		prop.State = *patch.State
	}
	if patch.ZipCode != nil {
		prop.ZipCode = *patch.ZipCode
	}
	if patch.PropertyType != nil {
		prop.PropertyType = *patch.PropertyType
	}
	if patch.ContractPrice != nil {
		if *patch.ContractPrice <= 0 {
			return nil, invalidInput("contract_price must be positive")
		}
		prop.ContractPrice = *patch.ContractPrice
	}
	if patch.ARV != nil {
		if *patch.ARV <= 0 {
			return nil, invalidInput("arv must be positive")
		}
		prop.ARV = *patch.ARV
	}
	if patch.RepairCost != nil {
		if *patch.RepairCost < 0 {
			return nil, invalidInput("repair_cost must not be negative")
		}
		prop.RepairCost = *patch.RepairCost
	}
	if patch.AssignmentFee != nil {
		if *patch.AssignmentFee <= 0 {
			return nil, invalidInput("assignment_fee must be positive")
		}
		prop.AssignmentFee = *patch.AssignmentFee
	}
	if patch.Notes != nil {
		prop.Notes = *patch.Notes
	}

	if err := s.db.Save(&prop).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

// ApproveProperty toggles the admin visibility gate. It never touches the
// status machine.
func (s *ListingService) ApproveProperty(requester *Identity, propertyID uint, isApproved bool) (*models.Property, error) {
	if err := RequireRole(requester, models.RoleAdmin); err != nil {
		return nil, err
	}

	var prop models.Property
	if err := s.db.First(&prop, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("property", propertyID)
		}
		return nil, err
	}

	prop.IsApproved = isApproved
	if err := s.db.Save(&prop).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"property_id": propertyID,
		"is_approved": isApproved,
	}).Info("property approval updated")
	return &prop, nil
}

// MarkUnderContract is the owner's (or an admin's) explicit transition
// available -> under_contract, taken when an offer is accepted.
func (s *ListingService) MarkUnderContract(requester *Identity, propertyID uint) (*models.Property, error) {
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
	if !requester.Owns(prop.UserID) && !requester.IsAdmin() {
		return nil, forbidden("property %d belongs to another user", propertyID)
	}
	if prop.Status != models.PropertyAvailable {
		return nil, conflict("property %d is %s", propertyID, prop.Status)
	}

	prop.Status = models.PropertyUnderContract
	if err := s.db.Save(&prop).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}
