package repositories

import (
	"context"
	"time"

	"aura-crm/internal/models"

	"gorm.io/gorm"
)

type communicationRepository struct {
	db *gorm.DB
}

func NewCommunicationRepository(db *gorm.DB) CommunicationRepository {
	return &communicationRepository{db: db}
}

func (r *communicationRepository) Create(ctx context.Context, comm *models.Communication) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(comm).Error
	observe("create", "communications", start, err)
	return err
}

func (r *communicationRepository) FindByID(ctx context.Context, id uint) (*models.Communication, error) {
	var comm models.Communication
	start := time.Now()
	err := r.db.WithContext(ctx).First(&comm, id).Error
	observe("find_by_id", "communications", start, err)
	if err != nil {
		return nil, err
	}
	return &comm, nil
}

func (r *communicationRepository) ListAll(ctx context.Context) ([]models.Communication, error) {
	var comms []models.Communication
	start := time.Now()
	err := r.db.WithContext(ctx).Order("id").Find(&comms).Error
	observe("list", "communications", start, err)
	return comms, err
}

// ListByLeadOwner returns the messages on leads owned by the given client.
func (r *communicationRepository) ListByLeadOwner(ctx context.Context, userID uint) ([]models.Communication, error) {
	var comms []models.Communication
	start := time.Now()
	err := r.db.WithContext(ctx).
		Joins("JOIN leads ON leads.id = communications.lead_id").
		Where("leads.user_id = ?", userID).
		Order("communications.id").
		Find(&comms).Error
	observe("list_by_lead_owner", "communications", start, err)
	return comms, err
}

func (r *communicationRepository) Update(ctx context.Context, comm *models.Communication) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Save(comm).Error
	observe("update", "communications", start, err)
	return err
}

func (r *communicationRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Delete(&models.Communication{}, id).Error
	observe("delete", "communications", start, err)
	return err
}
