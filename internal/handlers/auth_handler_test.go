package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"aura-crm/internal/middleware"
	"aura-crm/internal/notify"
	"aura-crm/internal/repositories"
	"aura-crm/internal/services"
	"aura-crm/internal/storage"
	"aura-crm/internal/validators"
	"aura-crm/pkg/database"
	"aura-crm/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

// setupRouter wires the full handler stack over an in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store, err := storage.NewStore(t.TempDir(), 5*1024*1024)
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	notifier := notify.NewNoopNotifier()

	userService := services.NewUserService(userRepo, validators.NewUserValidator(), testSecret)
	propertyService := services.NewPropertyService(propertyRepo, repositories.NewNoopPropertyCache(), validators.NewPropertyValidator(), store)
	leadService := services.NewLeadService(leadRepo, userRepo, validators.NewLeadValidator(), notifier)

	authHandler := NewAuthHandler(userService)
	propertyHandler := NewPropertyHandler(propertyService)
	leadHandler := NewLeadHandler(leadService)

	auth := middleware.AuthMiddleware(testSecret)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", auth, authHandler.Me)
	api.GET("/properties", propertyHandler.ListProperties)
	api.GET("/properties/:id", propertyHandler.GetProperty)
	api.POST("/properties", auth, propertyHandler.CreateProperty)
	api.POST("/leads", auth, leadHandler.CreateLead)
	api.GET("/leads", auth, leadHandler.ListLeads)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func registerAccount(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Test Person",
		"email":    email,
		"password": "Str0ng!pass",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]interface{})
	token := data["token"].(map[string]interface{})
	return token["token"].(string)
}

func TestRegisterEndpoint(t *testing.T) {
	r := setupRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "Str0ng!pass",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "User registered successfully", body["message"])

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", user["email"])
	assert.Equal(t, "client", user["role"])
	// the password hash never leaves the server
	_, leaked := user["password"]
	assert.False(t, leaked)

	token := data["token"].(map[string]interface{})
	assert.NotEmpty(t, token["token"])
	assert.Equal(t, "Bearer", token["token_type"])
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	r := setupRouter(t)
	registerAccount(t, r, "jane@example.com", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Jane Again",
		"email":    "jane@example.com",
		"password": "Str0ng!pass",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Conflict", body["error"])
	assert.Equal(t, "Email already exists", body["message"])
}

func TestRegisterEndpointValidationEnvelope(t *testing.T) {
	r := setupRouter(t)

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "weak",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Validation Error", body["error"])
	assert.Equal(t, "Password must be at least 8 characters long", body["message"])
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	r := setupRouter(t)
	registerAccount(t, r, "jane@example.com", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "Wr0ng!pass",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestMeEndpointRequiresToken(t *testing.T) {
	r := setupRouter(t)
	token := registerAccount(t, r, "jane@example.com", "")

	w, _ := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])
}

func TestPropertyEndpoints(t *testing.T) {
	r := setupRouter(t)
	agentToken := registerAccount(t, r, "agent@example.com", "agent")
	clientToken := registerAccount(t, r, "client@example.com", "")

	// only agents can create listings
	w, body := doJSON(t, r, http.MethodPost, "/api/properties", clientToken, map[string]interface{}{
		"title":         "Sunny townhouse in Springfield",
		"address":       "12 Ocean Drive",
		"city":          "Springfield",
		"state":         "IL",
		"zip_code":      "62701",
		"price":         450000,
		"property_type": "townhouse",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", body["error"])

	w, body = doJSON(t, r, http.MethodPost, "/api/properties", agentToken, map[string]interface{}{
		"title":         "Sunny townhouse in Springfield",
		"address":       "12 Ocean Drive",
		"city":          "Springfield",
		"state":         "IL",
		"zip_code":      "62701",
		"price":         450000,
		"property_type": "townhouse",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := body["data"].(map[string]interface{})
	assert.Equal(t, "active", created["status"])

	// listing is public
	w, body = doJSON(t, r, http.MethodGet, "/api/properties?city=Springfield", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := body["data"].(map[string]interface{})
	meta := page["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["total"])
	assert.Len(t, page["data"].([]interface{}), 1)

	// single fetch is public too
	w, body = doJSON(t, r, http.MethodGet, "/api/properties/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := body["data"].(map[string]interface{})
	assert.Equal(t, "Sunny townhouse in Springfield", fetched["title"])

	w, body = doJSON(t, r, http.MethodGet, "/api/properties/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", body["error"])

	// id 0 is well formed but can never match a row
	w, body = doJSON(t, r, http.MethodGet, "/api/properties/0", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not Found", body["error"])

	w, body = doJSON(t, r, http.MethodGet, "/api/properties/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad Request", body["error"])
}

func TestLeadEndpoints(t *testing.T) {
	r := setupRouter(t)
	clientToken := registerAccount(t, r, "client@example.com", "")
	otherToken := registerAccount(t, r, "other@example.com", "")

	w, body := doJSON(t, r, http.MethodPost, "/api/leads", clientToken, map[string]interface{}{
		"source":            "website",
		"preferred_contact": "email",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	lead := body["data"].(map[string]interface{})
	assert.Equal(t, "new", lead["status"])

	// each client only sees its own leads
	w, body = doJSON(t, r, http.MethodGet, "/api/leads", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["data"])

	w, body = doJSON(t, r, http.MethodGet, "/api/leads", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].([]interface{}), 1)
}
