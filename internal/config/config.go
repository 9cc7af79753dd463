package config

import (
	"os"
	"strconv"

	"github.com/memorylane634/RealEstateMarketplace/internal/models"
)

// DefaultCommissionRate is the platform's cut of the assignment fee on a
// closed deal, overridable via COMMISSION_RATE.
const DefaultCommissionRate = 0.07

// requiredDocuments lists the document types a user of each role must submit
// before an admin will normally verify them. Completeness is informational;
// the admin decision is the only hard gate.
var requiredDocuments = map[string][]string{
	models.RoleCashBuyer:  {models.DocumentTypeID, models.DocumentTypeProofOfFunds},
	models.RoleWholesaler: {models.DocumentTypeID, models.DocumentTypeContract},
}

// CommissionRate returns the configured commission rate, falling back to the
// 7% default when COMMISSION_RATE is unset or malformed.
func CommissionRate() float64 {
	if v := os.Getenv("COMMISSION_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			return rate
		}
	}
	return DefaultCommissionRate
}

// RequiredDocuments returns the document checklist for a role. Roles without
// a checklist (admin) get an empty slice.
func RequiredDocuments(role string) []string {
	return requiredDocuments[role]
}

// JWTSecret returns the token signing secret.
func JWTSecret() string {
	return getEnv("JWT_SECRET", "supersecret")
}

// AdminConsoleSecret returns the shared secret for the admin console trust
// domain. Empty means the console is disabled.
func AdminConsoleSecret() string {
	return os.Getenv("ADMIN_PASSWORD")
}

// UploadDir returns the directory uploaded documents are written to.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "./uploads")
}
