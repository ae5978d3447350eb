package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"time"

	"aura-crm/internal/authz"
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/repositories"
	"aura-crm/internal/storage"
	"aura-crm/internal/utils"
	"aura-crm/internal/validators"
	"aura-crm/pkg/logger"

	"gorm.io/gorm"
)

const propertyCacheTTL = 24 * time.Hour

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type PropertyService struct {
	repo      repositories.PropertyRepository
	cache     repositories.PropertyCache
	validator validators.PropertyValidator
	store     *storage.Store
}

func NewPropertyService(
	repo repositories.PropertyRepository,
	cache repositories.PropertyCache,
	validator validators.PropertyValidator,
	store *storage.Store,
) *PropertyService {
	return &PropertyService{
		repo:      repo,
		cache:     cache,
		validator: validator,
		store:     store,
	}
}

// List returns a filtered page of properties with pagination links.
func (s *PropertyService) List(ctx context.Context, filter models.PropertyFilter, basePath string, params url.Values) (*models.PaginatedPropertiesResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	properties, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.ServerError(err)
	}
	if properties == nil {
		properties = []models.Property{}
	}

	meta := models.PaginationMeta{
		Total:  total,
		Offset: filter.Offset,
		Limit:  filter.Limit,
	}
	if int64(filter.Offset+filter.Limit) < total {
		next := utils.BuildPaginationURL(basePath, filter.Offset+filter.Limit, filter.Limit, params)
		meta.Next = &next
	}
	if filter.Offset > 0 {
		prevOffset := filter.Offset - filter.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prev := utils.BuildPaginationURL(basePath, prevOffset, filter.Limit, params)
		meta.Prev = &prev
	}

	return &models.PaginatedPropertiesResponse{Data: properties, Meta: meta}, nil
}

// Get serves a single property, preferring the cache. The second return
// value reports whether the cache answered.
func (s *PropertyService) Get(ctx context.Context, id uint) (*models.Property, bool, error) {
	if cached, err := s.cache.GetProperty(ctx, id); err == nil && cached != nil {
		return cached, true, nil
	} else if err != nil {
		logger.GlobalLogger.Errorf("property cache read failed: %v", err)
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, mapPropertyError(err, id)
	}

	if err := s.cache.SetProperty(ctx, property, propertyCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("property cache write failed: %v", err)
	}
	return property, false, nil
}

// Create stores uploaded images first, then inserts the property and image
// rows in one transaction. If the insert fails the stored files are removed
// so nothing dangles on disk.
func (s *PropertyService) Create(ctx context.Context, identity authz.Identity, payload *models.PropertyPayload, images []*multipart.FileHeader) (*models.Property, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceProperty, authz.Ownership{}); err != nil {
		return nil, err
	}

	if ok, errs := s.validator.ValidateCreate(payload); !ok {
		return nil, apperrors.ValidationFailed(errs)
	}

	var urls []string
	for _, fh := range images {
		u, err := s.store.SaveImage(fh)
		if err != nil {
			s.removeFiles(urls)
			return nil, apperrors.BadRequest(err.Error())
		}
		urls = append(urls, u)
	}

	property := &models.Property{
		Title:         payload.Title,
		Address:       payload.Address,
		City:          payload.City,
		State:         payload.State,
		ZipCode:       payload.ZipCode,
		Latitude:      payload.Latitude,
		Longitude:     payload.Longitude,
		Price:         *payload.Price,
		PropertyType:  payload.PropertyType,
		Bedrooms:      payload.Bedrooms,
		Bathrooms:     payload.Bathrooms,
		SquareFeet:    payload.SquareFeet,
		LotSize:       payload.LotSize,
		YearBuilt:     payload.YearBuilt,
		ParkingSpaces: payload.ParkingSpaces,
		Status:        payload.Status,
		AgentID:       identity.UserID,
	}
	if property.Status == "" {
		property.Status = "active"
	}
	for i, u := range urls {
		property.Images = append(property.Images, models.PropertyImage{
			ImageURL:  u,
			IsPrimary: i == 0,
			Position:  i,
		})
	}

	if err := s.repo.Create(ctx, property); err != nil {
		s.removeFiles(urls)
		return nil, apperrors.ServerError(err)
	}

	if err := s.cache.SetProperty(ctx, property, propertyCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("property cache write failed: %v", err)
	}
	return property, nil
}

// Update applies whitelisted fields; AgentID is immutable once set.
func (s *PropertyService) Update(ctx context.Context, identity authz.Identity, id uint, payload *models.PropertyPayload) (*models.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapPropertyError(err, id)
	}

	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceProperty, authz.Ownership{OwnerID: property.AgentID}); err != nil {
		return nil, err
	}

	if ok, errs := s.validator.ValidateUpdate(payload); !ok {
		return nil, apperrors.ValidationFailed(errs)
	}

	if payload.Title != "" {
		property.Title = payload.Title
	}
	if payload.Address != "" {
		property.Address = payload.Address
	}
	if payload.City != "" {
		property.City = payload.City
	}
	if payload.State != "" {
		property.State = payload.State
	}
	if payload.ZipCode != "" {
		property.ZipCode = payload.ZipCode
	}
	if payload.Price != nil && *payload.Price != 0 {
		property.Price = *payload.Price
	}
	if payload.PropertyType != "" {
		property.PropertyType = payload.PropertyType
	}
	if payload.Status != "" {
		property.Status = payload.Status
	}
	if payload.Bedrooms != nil {
		property.Bedrooms = payload.Bedrooms
	}
	if payload.Bathrooms != nil {
		property.Bathrooms = payload.Bathrooms
	}
	if payload.SquareFeet != nil {
		property.SquareFeet = payload.SquareFeet
	}
	if payload.LotSize != nil {
		property.LotSize = payload.LotSize
	}
	if payload.YearBuilt != nil {
		property.YearBuilt = payload.YearBuilt
	}
	if payload.ParkingSpaces != nil {
		property.ParkingSpaces = payload.ParkingSpaces
	}
	if payload.Latitude != nil {
		property.Latitude = payload.Latitude
	}
	if payload.Longitude != nil {
		property.Longitude = payload.Longitude
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, apperrors.ServerError(err)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("property cache invalidation failed: %v", err)
	}
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, identity authz.Identity, id uint) error {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapPropertyError(err, id)
	}

	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceProperty, authz.Ownership{OwnerID: property.AgentID}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.ServerError(err)
	}

	for _, img := range property.Images {
		if err := s.store.Remove(img.ImageURL); err != nil {
			logger.GlobalLogger.Errorf("failed to remove image file %s: %v", img.ImageURL, err)
		}
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("property cache invalidation failed: %v", err)
	}
	return nil
}

func (s *PropertyService) removeFiles(urls []string) {
	for _, u := range urls {
		if err := s.store.Remove(u); err != nil {
			logger.GlobalLogger.Errorf("failed to remove uploaded file %s: %v", u, err)
		}
	}
}

func mapPropertyError(err error, id uint) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(fmt.Sprintf("Property %d not found", id))
	}
	return apperrors.ServerError(err)
}
