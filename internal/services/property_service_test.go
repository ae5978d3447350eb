package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/repositories"
	"aura-crm/internal/storage"
	"aura-crm/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryCache is an in-process PropertyCache for asserting hit behavior.
type memoryCache struct {
	entries map[uint]*models.Property
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[uint]*models.Property)}
}

func (c *memoryCache) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	return c.entries[id], nil
}

func (c *memoryCache) SetProperty(ctx context.Context, property *models.Property, ttl time.Duration) error {
	c.entries[property.ID] = property
	return nil
}

func (c *memoryCache) Invalidate(ctx context.Context, id uint) error {
	delete(c.entries, id)
	return nil
}

func newPropertyService(t *testing.T, db *gorm.DB, cache repositories.PropertyCache) *PropertyService {
	t.Helper()
	store, err := storage.NewStore(t.TempDir(), 5*1024*1024)
	require.NoError(t, err)
	if cache == nil {
		cache = repositories.NewNoopPropertyCache()
	}
	return NewPropertyService(repositories.NewPropertyRepository(db), cache, validators.NewPropertyValidator(), store)
}

func propertyPayload(title, city string, price float64) *models.PropertyPayload {
	return &models.PropertyPayload{
		Title:        title,
		Address:      "12 Ocean Drive",
		City:         city,
		State:        "IL",
		ZipCode:      "62701",
		Price:        &price,
		PropertyType: "townhouse",
	}
}

func TestPropertyCreateRequiresAgent(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)

	_, err := svc.Create(testCtx, identityOf(client), propertyPayload("Sunny townhouse", "Springfield", 450000), nil)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErrCode(t, err))
	assert.Contains(t, err.Error(), "Only agents can create properties")
}

func TestPropertyCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	created, err := svc.Create(testCtx, identityOf(agent), propertyPayload("Sunny townhouse", "Springfield", 450000), nil)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, agent.ID, created.AgentID)
	assert.Equal(t, "active", created.Status)

	fetched, cacheHit, err := svc.Get(testCtx, created.ID)
	require.NoError(t, err)
	assert.False(t, cacheHit)
	assert.Equal(t, "Sunny townhouse", fetched.Title)
	assert.Equal(t, 450000.0, fetched.Price)
}

// imageHeader builds a multipart.FileHeader the way gin hands uploads to the
// handler layer.
func imageHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["images"][0]
}

func TestPropertyCreateStoresImagesInOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	images := []*multipart.FileHeader{
		imageHeader(t, "front.jpg", []byte("front")),
		imageHeader(t, "back.png", []byte("back")),
	}

	created, err := svc.Create(testCtx, identityOf(agent), propertyPayload("Sunny townhouse", "Springfield", 450000), images)
	require.NoError(t, err)
	require.Len(t, created.Images, 2)
	assert.True(t, created.Images[0].IsPrimary)
	assert.False(t, created.Images[1].IsPrimary)
	assert.Equal(t, 0, created.Images[0].Position)
	assert.Equal(t, 1, created.Images[1].Position)

	fetched, _, err := svc.Get(testCtx, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Images, 2)
	assert.Contains(t, fetched.Images[0].ImageURL, "/uploads/front-")
	assert.Contains(t, fetched.Images[1].ImageURL, "/uploads/back-")
}

func TestPropertyCreateRejectsBadImage(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	images := []*multipart.FileHeader{imageHeader(t, "malware.exe", []byte("nope"))}

	_, err := svc.Create(testCtx, identityOf(agent), propertyPayload("Sunny townhouse", "Springfield", 450000), images)
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErrCode(t, err))
}

func TestPropertyCreateCollectsValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	_, err := svc.Create(testCtx, identityOf(agent), &models.PropertyPayload{}, nil)
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidationFailed, appErr.Code)
	assert.Contains(t, appErr.Errors, "Title is required")
	assert.Contains(t, appErr.Errors, "Price is required")
}

func TestPropertyGetServesFromCache(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	svc := newPropertyService(t, db, cache)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	created, err := svc.Create(testCtx, identityOf(agent), propertyPayload("Sunny townhouse", "Springfield", 450000), nil)
	require.NoError(t, err)

	_, cacheHit, err := svc.Get(testCtx, created.ID)
	require.NoError(t, err)
	assert.True(t, cacheHit)
}

func TestPropertyUpdateOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	owner := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)
	rival := seedUser(t, db, "Agent Two", "rival@example.com", models.RoleAgent)
	admin := seedUser(t, db, "Admin One", "admin@example.com", models.RoleAdmin)

	created, err := svc.Create(testCtx, identityOf(owner), propertyPayload("Sunny townhouse", "Springfield", 450000), nil)
	require.NoError(t, err)

	_, err = svc.Update(testCtx, identityOf(rival), created.ID, &models.PropertyPayload{Status: "pending"})
	assert.Equal(t, apperrors.ErrCodeForbidden, appErrCode(t, err))
	assert.Contains(t, err.Error(), "You can only update your own properties")

	updated, err := svc.Update(testCtx, identityOf(owner), created.ID, &models.PropertyPayload{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)
	// listing agent never changes
	assert.Equal(t, owner.ID, updated.AgentID)

	updated, err = svc.Update(testCtx, identityOf(admin), created.ID, &models.PropertyPayload{Status: "sold"})
	require.NoError(t, err)
	assert.Equal(t, "sold", updated.Status)
	assert.Equal(t, owner.ID, updated.AgentID)
}

func TestPropertyUpdateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	owner := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	created, err := svc.Create(testCtx, identityOf(owner), propertyPayload("Sunny townhouse", "Springfield", 450000), nil)
	require.NoError(t, err)

	_, err = svc.Update(testCtx, identityOf(owner), created.ID, &models.PropertyPayload{PropertyType: "castle"})
	assert.Equal(t, apperrors.ErrCodeValidationFailed, appErrCode(t, err))
}

func TestPropertyDelete(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	svc := newPropertyService(t, db, cache)
	owner := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	created, err := svc.Create(testCtx, identityOf(owner), propertyPayload("Sunny townhouse", "Springfield", 450000), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(testCtx, identityOf(owner), created.ID))
	assert.Nil(t, cache.entries[created.ID])

	_, _, err = svc.Get(testCtx, created.ID)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErrCode(t, err))
	assert.Contains(t, err.Error(), "not found")
}

func TestPropertyListFiltersAndPaginates(t *testing.T) {
	db := setupTestDB(t)
	svc := newPropertyService(t, db, nil)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	for i, price := range []float64{300000, 400000, 500000} {
		title := []string{"First Springfield home", "Second Springfield home", "Third Springfield home"}[i]
		_, err := svc.Create(testCtx, identityOf(agent), propertyPayload(title, "Springfield", price), nil)
		require.NoError(t, err)
	}
	_, err := svc.Create(testCtx, identityOf(agent), propertyPayload("Shelbyville cottage", "Shelbyville", 250000), nil)
	require.NoError(t, err)

	page, err := svc.List(testCtx, models.PropertyFilter{City: "Springfield", Limit: 2}, "/api/properties", url.Values{"city": {"Springfield"}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Len(t, page.Data, 2)
	require.NotNil(t, page.Meta.Next)
	assert.Nil(t, page.Meta.Prev)

	page, err = svc.List(testCtx, models.PropertyFilter{City: "Springfield", Limit: 2, Offset: 2}, "/api/properties", url.Values{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Nil(t, page.Meta.Next)
	require.NotNil(t, page.Meta.Prev)

	min := 350000.0
	page, err = svc.List(testCtx, models.PropertyFilter{MinPrice: &min}, "/api/properties", url.Values{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Meta.Total)
}
