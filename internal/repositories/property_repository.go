package repositories

import (
	"context"
	"time"

	"aura-crm/internal/models"

	"gorm.io/gorm"
)

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create inserts the property and its image rows in a single transaction.
func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(property).Error
	observe("create", "properties", start, err)
	return err
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	start := time.Now()
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		First(&property, id).Error
	observe("find_by_id", "properties", start, err)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Property{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	start := time.Now()
	err := query.Count(&total).Error
	if err != nil {
		observe("list", "properties", start, err)
		return nil, 0, err
	}

	err = query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		Order("id").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&properties).Error
	observe("list", "properties", start, err)
	return properties, total, err
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Omit("Images").Save(property).Error
	observe("update", "properties", start, err)
	return err
}

// Delete removes the property and its images together.
func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Property{}, id).Error
	})
	observe("delete", "properties", start, err)
	return err
}
