package service

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// VerificationService gates verification-sensitive actions behind the
// per-role document checklist and the admin decision. The admin decision is
// the only thing that flips a user's IsVerified; document review and the
// checklist are informational.
type VerificationService struct {
	db *gorm.DB
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{db: db}
}

var documentTypes = map[string]bool{
	models.DocumentTypeID:           true,
	models.DocumentTypeProofOfFunds: true,
	models.DocumentTypeContract:     true,
}

// SubmitDocument records an uploaded proof artifact with status pending.
// The caller is responsible for having persisted the file before this is
// invoked, so a crash never leaves a row pointing at a missing file.
// Uploading a document never changes the user's verification status, even
// after a rejection.
func (s *VerificationService) SubmitDocument(requester *Identity, documentType, filePath string) (*models.VerificationDocument, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	if filePath == "" {
		return nil, invalidInput("document file is required")
	}
	if !documentTypes[documentType] {
		return nil, invalidInput("unknown document type %q", documentType)
	}

	doc := &models.VerificationDocument{
		UserID:       requester.UserID,
		DocumentType: documentType,
		FilePath:     filePath,
		Status:       models.DocumentPending,
	}
	if err := s.db.Create(doc).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":       requester.UserID,
		"document_type": documentType,
	}).Info("verification document submitted")
	return doc, nil
}

// ListDocuments returns the requester's own documents.
func (s *VerificationService) ListDocuments(requester *Identity) ([]models.VerificationDocument, error) {
	if err := RequireAuthenticated(requester); err != nil {
		return nil, err
	}
	var docs []models.VerificationDocument
	if err := s.db.Where("user_id = ?", requester.UserID).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// ReviewDocument is the admin decision on a single document. It never touches
// the owning user's verification status; that is a separate explicit action.
func (s *VerificationService) ReviewDocument(requester *Identity, documentID uint, decision string) (*models.VerificationDocument, error) {
	if err := RequireRole(requester, models.RoleAdmin); err != nil {
		return nil, err
	}
	if decision != models.DocumentApproved && decision != models.DocumentRejected {
		return nil, invalidInput("invalid document decision %q", decision)
	}

	var doc models.VerificationDocument
	if err := s.db.First(&doc, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("verification document", documentID)
		}
		return nil, err
	}

	doc.Status = decision
	if err := s.db.Save(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReviewUser is the sole gate that unlocks verification-dependent actions.
// VerificationStatus and IsVerified are written in one UPDATE so the pair
// can never diverge. Calling it twice with the same decision is a no-op.
func (s *VerificationService) ReviewUser(requester *Identity, userID uint, decision string) (*models.User, error) {
	if err := RequireRole(requester, models.RoleAdmin); err != nil {
		return nil, err
	}
	if decision != models.VerificationVerified && decision != models.VerificationRejected {
		return nil, invalidInput("invalid verification decision %q", decision)
	}
	return s.setVerification(userID, decision)
}

// VerifyUserWithRole is the admin-console variant: it verifies the user only
// after confirming their role matches the console action taken.
func (s *VerificationService) VerifyUserWithRole(userID uint, expectedRole string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", userID)
		}
		return nil, err
	}
	if user.Role != expectedRole {
		return nil, invalidInput("user %d is not a %s", userID, expectedRole)
	}
	return s.setVerification(userID, models.VerificationVerified)
}

func (s *VerificationService) setVerification(userID uint, decision string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", userID)
		}
		return nil, err
	}

	err := s.db.Model(&user).Updates(map[string]interface{}{
		"verification_status": decision,
		"is_verified":         decision == models.VerificationVerified,
	}).Error
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"decision": decision,
	}).Info("user verification reviewed")
	return &user, nil
}

// DocumentChecklist reports which required document types a user has
// submitted. "Complete" counts any document of each required type, in any
// review status; it is informational and distinct from IsVerified.
type DocumentChecklist struct {
	Role      string   `json:"role"`
	Required  []string `json:"required"`
	Submitted []string `json:"submitted"`
	Complete  bool     `json:"complete"`
}

// Checklist builds the checklist for a user against their role's required
// document types.
func (s *VerificationService) Checklist(userID uint) (*DocumentChecklist, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user", userID)
		}
		return nil, err
	}

	var docs []models.VerificationDocument
	if err := s.db.Where("user_id = ?", userID).Find(&docs).Error; err != nil {
		return nil, err
	}

	submitted := make(map[string]bool)
	for _, doc := range docs {
		submitted[doc.DocumentType] = true
	}

	checklist := &DocumentChecklist{
		Role:     user.Role,
		Required: config.RequiredDocuments(user.Role),
		Complete: true,
	}
	for docType := range submitted {
		checklist.Submitted = append(checklist.Submitted, docType)
	}
	for _, required := range checklist.Required {
		if !submitted[required] {
			checklist.Complete = false
		}
	}
	return checklist, nil
}

// ListUsers returns every user, for the role-based admin dashboard.
func (s *VerificationService) ListUsers(requester *Identity) ([]models.User, error) {
	if err := RequireRole(requester, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.Users()
}

// Users returns every user without a guard. Reserved for callers inside an
// already-established admin trust domain (the console middleware).
func (s *VerificationService) Users() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UnverifiedUsersByRole returns the review queue for one role. Console-only.
func (s *VerificationService) UnverifiedUsersByRole(role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("role = ? AND is_verified = ?", role, false).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListAllDocuments returns every document, for the role-based admin dashboard.
func (s *VerificationService) ListAllDocuments(requester *Identity) ([]models.VerificationDocument, error) {
	if err := RequireRole(requester, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.AllDocuments()
}

// AllDocuments returns every document without a guard. Console-only.
func (s *VerificationService) AllDocuments() ([]models.VerificationDocument, error) {
	var docs []models.VerificationDocument
	if err := s.db.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
