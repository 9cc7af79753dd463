package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
	"github.com/memorylane634/RealEstateMarketplace/internal/models"
	"github.com/memorylane634/RealEstateMarketplace/internal/routes"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VerificationDocument{},
		&models.BuyerCriteria{},
		&models.Property{},
		&models.SavedDeal{},
		&models.ContactRequest{},
		&models.ClosedDeal{},
	))
	config.DB = db

	return routes.SetupRouter()
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID         uint   `json:"ID"`
		Username   string `json:"username"`
		Role       string `json:"role"`
		IsVerified bool   `json:"is_verified"`
	} `json:"user"`
}

func signup(t *testing.T, r *gin.Engine, username, role string) authResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func propertyForm(t *testing.T, withContract bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)
	fields := map[string]string{
		"title":          "Brick ranch",
		"address":        "9 Pine Rd",
		"city":           "Memphis",
		"state":          "TN",
		"zip_code":       "38103",
		"property_type":  "single_family",
		"contract_price": "90000",
		"arv":            "160000",
		"repair_cost":    "20000",
		"assignment_fee": "10000",
	}
	for name, value := range fields {
		require.NoError(t, form.WriteField(name, value))
	}
	if withContract {
		part, err := form.CreateFormFile("contract_document", "contract.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 stub"))
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())
	return buf, form.FormDataContentType()
}

func postProperty(r *gin.Engine, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/properties", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupAndLogin(t *testing.T) {
	r := setupServer(t)

	first := signup(t, r, "walter", models.RoleWholesaler)
	assert.Equal(t, models.RoleWholesaler, first.User.Role)
	assert.False(t, first.User.IsVerified)

	// Unique username/email.
	w := doJSON(r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"username": "walter",
		"email":    "walter@example.com",
		"password": "secret123",
		"role":     models.RoleWholesaler,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "walter",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "walter",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The password hash never leaves the API.
	assert.NotContains(t, w.Body.String(), `"password"`)

	var login authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(r, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"walter"`)
}

func TestVerificationGatedListingFlow(t *testing.T) {
	r := setupServer(t)

	wholesaler := signup(t, r, "wanda", models.RoleWholesaler)
	admin := signup(t, r, "root", models.RoleAdmin)

	// Unverified wholesalers are blocked at the middleware.
	body, contentType := propertyForm(t, true)
	w := postProperty(r, wholesaler.Token, body, contentType)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin verifies the user; the old token picks up the new state on the
	// next request because identity is reloaded from the store.
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/admin/verify-user/%d", wholesaler.User.ID), admin.Token, gin.H{
		"verification_status": "verified",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Missing contract document is rejected even with every other field set.
	body, contentType = propertyForm(t, false)
	w = postProperty(r, wholesaler.Token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body, contentType = propertyForm(t, true)
	w = postProperty(r, wholesaler.Token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Property struct {
			ID         uint `json:"ID"`
			IsApproved bool `json:"is_approved"`
		} `json:"property"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.Property.IsApproved)

	// Invisible to anonymous browsers until approved.
	w = doJSON(r, http.MethodGet, "/api/properties", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"Brick ranch"`)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/admin/approve-property/%d", created.Property.ID), admin.Token, gin.H{
		"is_approved": true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodGet, "/api/properties", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Brick ranch"`)

	// The owner sees their unapproved listing directly either way.
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/admin/approve-property/%d", created.Property.ID), admin.Token, gin.H{
		"is_approved": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/properties/%d", created.Property.ID), wholesaler.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/properties/%d", created.Property.ID), "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	r := setupServer(t)
	buyer := signup(t, r, "bob", models.RoleCashBuyer)

	w := doJSON(r, http.MethodGet, "/api/admin/users", buyer.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// assertSingleJSONObject decodes the body and fails when a second JSON
// document follows the first, which happens if a handler wrote a response
// before a middleware aborted.
func assertSingleJSONObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(w.Body)
	var body map[string]interface{}
	require.NoError(t, dec.Decode(&body))
	assert.False(t, dec.More(), "response contains more than one JSON document")
	return body
}

func TestMiddlewareRejectionsWriteOneBody(t *testing.T) {
	r := setupServer(t)
	buyer := signup(t, r, "betty", models.RoleCashBuyer)
	wholesaler := signup(t, r, "will", models.RoleWholesaler)

	// The role gate must reject before the handler runs; the body is the
	// middleware's error object and nothing else.
	w := doJSON(r, http.MethodGet, "/api/admin/users", buyer.Token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	body := assertSingleJSONObject(t, w)
	assert.Equal(t, "Insufficient permissions", body["error"])

	// Same for the verification gate: no listing row may exist afterwards.
	form, contentType := propertyForm(t, true)
	w = postProperty(r, wholesaler.Token, form, contentType)
	require.Equal(t, http.StatusForbidden, w.Code)
	body = assertSingleJSONObject(t, w)
	assert.Equal(t, "Your account must be verified to access this feature", body["error"])

	var count int64
	require.NoError(t, config.DB.Model(&models.Property{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConsoleTrustDomain(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	r := setupServer(t)

	seller := signup(t, r, "sally", models.RoleWholesaler)

	w := doJSON(r, http.MethodGet, "/api/console/sellers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/console/sellers", "wrong-secret", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/api/console/sellers", "hunter2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sally"`)

	// Role precondition: a wholesaler cannot be verified as a buyer.
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/console/verify-buyer/%d", seller.User.ID), "hunter2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/api/console/verify-seller/%d", seller.User.ID), "hunter2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Verified sellers leave the review queue.
	w = doJSON(r, http.MethodGet, "/api/console/sellers", "hunter2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), `"sally"`))
}

func TestConsoleDisabledWithoutSecret(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	r := setupServer(t)

	w := doJSON(r, http.MethodGet, "/api/console/deals", "anything", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
