package repositories

import (
	"context"
	"time"

	"aura-crm/internal/models"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(user).Error
	observe("create", "users", start, err)
	return err
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	start := time.Now()
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	observe("find_by_email", "users", start, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	start := time.Now()
	err := r.db.WithContext(ctx).First(&user, id).Error
	observe("find_by_id", "users", start, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	start := time.Now()
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	observe("list", "users", start, err)
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Save(user).Error
	observe("update", "users", start, err)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error
	observe("delete", "users", start, err)
	return err
}
