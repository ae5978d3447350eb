package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"aura-crm/internal/authz"
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/repositories"
	"aura-crm/internal/validators"
	"aura-crm/pkg/auth"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	jwtSecret string
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		jwtSecret: jwtSecret,
	}
}

// Register validates the payload fail-fast, hashes the password and issues a
// token for the new account.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *auth.TokenDetails, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, nil, err
	}

	role := models.RoleClient
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	if existing, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, nil, apperrors.Conflict(apperrors.MsgEmailExists)
	} else if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperrors.ServerError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperrors.ServerError(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
		Phone:    req.Phone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperrors.Conflict(apperrors.MsgEmailExists)
		}
		return nil, nil, apperrors.ServerError(err)
	}

	token, err := auth.GenerateJWT(user.ID, string(user.Role), user.Email, s.jwtSecret)
	if err != nil {
		return nil, nil, apperrors.ServerError(err)
	}

	return user, token, nil
}

// Login verifies credentials. All failure modes collapse into the same
// Unauthorized message so callers cannot probe which emails exist.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *auth.TokenDetails, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, nil, apperrors.Unauthorized(apperrors.MsgInvalidCredentials)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.Unauthorized(apperrors.MsgInvalidCredentials)
		}
		return nil, nil, apperrors.ServerError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperrors.Unauthorized(apperrors.MsgInvalidCredentials)
	}

	token, err := auth.GenerateJWT(user.ID, string(user.Role), user.Email, s.jwtSecret)
	if err != nil {
		return nil, nil, apperrors.ServerError(err)
	}

	return user, token, nil
}

// Me returns the caller's own record.
func (s *UserService) Me(ctx context.Context, identity authz.Identity) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, mapUserError(err, identity.UserID)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, identity authz.Identity) ([]models.User, error) {
	if err := authz.Authorize(identity, authz.ActionList, authz.ResourceUser, authz.Ownership{}); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.ServerError(err)
	}
	return users, nil
}

// Create lets an admin provision an account directly.
func (s *UserService) Create(ctx context.Context, identity authz.Identity, req *models.RegisterRequest) (*models.User, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceUser, authz.Ownership{}); err != nil {
		return nil, err
	}
	user, _, err := s.Register(ctx, req)
	return user, err
}

func (s *UserService) GetByID(ctx context.Context, identity authz.Identity, id uint) (*models.User, error) {
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceUser, authz.Ownership{OwnerID: id}); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err, id)
	}
	return user, nil
}

// Update applies whitelisted fields only; role and password never change here.
func (s *UserService) Update(ctx context.Context, identity authz.Identity, id uint, payload *models.UserPayload) (*models.User, error) {
	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceUser, authz.Ownership{OwnerID: id}); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateUpdate(payload); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err, id)
	}

	if payload.Email != "" && payload.Email != user.Email {
		if existing, err := s.repo.FindByEmail(ctx, payload.Email); err == nil && existing != nil {
			return nil, apperrors.Conflict(apperrors.MsgEmailExists)
		} else if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ServerError(err)
		}
		user.Email = payload.Email
	}
	if payload.Name != "" {
		user.Name = payload.Name
	}
	if payload.Phone != "" {
		user.Phone = payload.Phone
	}
	if payload.BudgetMin != nil {
		user.BudgetMin = payload.BudgetMin
	}
	if payload.BudgetMax != nil {
		user.BudgetMax = payload.BudgetMax
	}
	if payload.Preferences != "" {
		user.Preferences = payload.Preferences
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(apperrors.MsgEmailExists)
		}
		return nil, apperrors.ServerError(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, identity authz.Identity, id uint) error {
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceUser, authz.Ownership{OwnerID: id}); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapUserError(err, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.ServerError(err)
	}
	return nil
}

func mapUserError(err error, id uint) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(fmt.Sprintf("User with ID %d not found", id))
	}
	return apperrors.ServerError(err)
}
