package repositories

import (
	"context"
	"time"

	"aura-crm/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int64, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uint) error
}

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	FindByID(ctx context.Context, id uint) (*models.Lead, error)
	ListAll(ctx context.Context) ([]models.Lead, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	Delete(ctx context.Context, id uint) error
}

type CommunicationRepository interface {
	Create(ctx context.Context, comm *models.Communication) error
	FindByID(ctx context.Context, id uint) (*models.Communication, error)
	ListAll(ctx context.Context) ([]models.Communication, error)
	ListByLeadOwner(ctx context.Context, userID uint) ([]models.Communication, error)
	Update(ctx context.Context, comm *models.Communication) error
	Delete(ctx context.Context, id uint) error
}

// PropertyCache caches single property reads; a miss returns (nil, nil).
type PropertyCache interface {
	GetProperty(ctx context.Context, id uint) (*models.Property, error)
	SetProperty(ctx context.Context, property *models.Property, ttl time.Duration) error
	Invalidate(ctx context.Context, id uint) error
}
