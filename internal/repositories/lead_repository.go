package repositories

import (
	"context"
	"time"

	"aura-crm/internal/models"

	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(lead).Error
	observe("create", "leads", start, err)
	return err
}

func (r *leadRepository) FindByID(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	start := time.Now()
	err := r.db.WithContext(ctx).First(&lead, id).Error
	observe("find_by_id", "leads", start, err)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) ListAll(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	start := time.Now()
	err := r.db.WithContext(ctx).Order("id").Find(&leads).Error
	observe("list", "leads", start, err)
	return leads, err
}

func (r *leadRepository) ListByUser(ctx context.Context, userID uint) ([]models.Lead, error) {
	var leads []models.Lead
	start := time.Now()
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&leads).Error
	observe("list_by_user", "leads", start, err)
	return leads, err
}

func (r *leadRepository) Update(ctx context.Context, lead *models.Lead) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Save(lead).Error
	observe("update", "leads", start, err)
	return err
}

// Delete removes the lead and its communications together.
func (r *leadRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lead_id = ?", id).Delete(&models.Communication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Lead{}, id).Error
	})
	observe("delete", "leads", start, err)
	return err
}
