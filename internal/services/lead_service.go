package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"aura-crm/internal/authz"
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/notify"
	"aura-crm/internal/repositories"
	"aura-crm/internal/validators"
	"aura-crm/pkg/logger"

	"gorm.io/gorm"
)

type LeadService struct {
	repo      repositories.LeadRepository
	users     repositories.UserRepository
	validator validators.LeadValidator
	notifier  notify.Notifier
}

func NewLeadService(
	repo repositories.LeadRepository,
	users repositories.UserRepository,
	validator validators.LeadValidator,
	notifier notify.Notifier,
) *LeadService {
	return &LeadService{
		repo:      repo,
		users:     users,
		validator: validator,
		notifier:  notifier,
	}
}

// Create builds a lead from the payload. Clients always own what they
// create: their user_id is forced, the status starts at "new" and any
// attempted agent assignment is dropped.
func (s *LeadService) Create(ctx context.Context, identity authz.Identity, payload *models.LeadPayload) (*models.Lead, error) {
	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceLead, authz.Ownership{OwnerID: identity.UserID}); err != nil {
		return nil, err
	}

	if ok, errs := s.validator.Validate(payload); !ok {
		return nil, apperrors.ValidationFailed(errs)
	}

	lead := &models.Lead{
		PropertyID:           payload.PropertyID,
		Source:               payload.Source,
		PreferredContact:     payload.PreferredContact,
		PreferredContactTime: payload.PreferredContactTime,
		BudgetMin:            payload.BudgetMin,
		BudgetMax:            payload.BudgetMax,
		DesiredLocation:      payload.DesiredLocation,
		DesiredPropertyType:  payload.DesiredPropertyType,
		DesiredBedrooms:      payload.DesiredBedrooms,
		DesiredBathrooms:     payload.DesiredBathrooms,
		Notes:                payload.Notes,
	}

	if identity.Role == models.RoleClient {
		lead.UserID = identity.UserID
		lead.Status = "new"
	} else {
		if payload.UserID == nil {
			return nil, apperrors.BadRequest("User ID is required")
		}
		lead.UserID = *payload.UserID
		lead.AssignedAgentID = payload.AssignedAgentID
		lead.Status = payload.Status
		if lead.Status == "" {
			lead.Status = "new"
		}
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, apperrors.ServerError(err)
	}

	s.notifyNewLead(ctx, lead)
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, identity authz.Identity) ([]models.Lead, error) {
	var leads []models.Lead
	var err error
	if identity.Role == models.RoleClient {
		leads, err = s.repo.ListByUser(ctx, identity.UserID)
	} else {
		leads, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, apperrors.ServerError(err)
	}
	return leads, nil
}

func (s *LeadService) Get(ctx context.Context, identity authz.Identity, id uint) (*models.Lead, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLeadError(err, id)
	}
	if err := authz.Authorize(identity, authz.ActionRead, authz.ResourceLead, authz.Ownership{OwnerID: lead.UserID}); err != nil {
		return nil, err
	}
	return lead, nil
}

// Update applies whitelisted fields. Status, ownership and agent assignment
// are agent/admin-only; clients may only touch their preference fields.
func (s *LeadService) Update(ctx context.Context, identity authz.Identity, id uint, payload *models.LeadPayload) (*models.Lead, error) {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLeadError(err, id)
	}
	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceLead, authz.Ownership{OwnerID: lead.UserID}); err != nil {
		return nil, err
	}
	if ok, errs := s.validator.Validate(payload); !ok {
		return nil, apperrors.ValidationFailed(errs)
	}

	if payload.Source != "" {
		lead.Source = payload.Source
	}
	if payload.PreferredContact != "" {
		lead.PreferredContact = payload.PreferredContact
	}
	if payload.PreferredContactTime != "" {
		lead.PreferredContactTime = payload.PreferredContactTime
	}
	if payload.BudgetMin != nil {
		lead.BudgetMin = payload.BudgetMin
	}
	if payload.BudgetMax != nil {
		lead.BudgetMax = payload.BudgetMax
	}
	if payload.DesiredLocation != "" {
		lead.DesiredLocation = payload.DesiredLocation
	}
	if payload.DesiredPropertyType != "" {
		lead.DesiredPropertyType = payload.DesiredPropertyType
	}
	if payload.DesiredBedrooms != nil {
		lead.DesiredBedrooms = payload.DesiredBedrooms
	}
	if payload.DesiredBathrooms != nil {
		lead.DesiredBathrooms = payload.DesiredBathrooms
	}
	if payload.Notes != "" {
		lead.Notes = payload.Notes
	}
	if payload.PropertyID != nil {
		lead.PropertyID = payload.PropertyID
	}

	if identity.Role == models.RoleAgent || identity.Role == models.RoleAdmin {
		if payload.Status != "" {
			lead.Status = payload.Status
		}
		if payload.AssignedAgentID != nil {
			lead.AssignedAgentID = payload.AssignedAgentID
		}
		if payload.UserID != nil {
			lead.UserID = *payload.UserID
		}
	}

	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, apperrors.ServerError(err)
	}
	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, identity authz.Identity, id uint) error {
	lead, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapLeadError(err, id)
	}
	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceLead, authz.Ownership{OwnerID: lead.UserID}); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.ServerError(err)
	}
	return nil
}

func (s *LeadService) notifyNewLead(ctx context.Context, lead *models.Lead) {
	client, err := s.users.FindByID(ctx, lead.UserID)
	if err != nil {
		logger.GlobalLogger.Errorf("lead notification skipped, user %d lookup failed: %v", lead.UserID, err)
		return
	}
	if err := s.notifier.NewLead(ctx, lead, client); err != nil {
		logger.GlobalLogger.Errorf("lead notification failed: %v", err)
	}
}

func mapLeadError(err error, id uint) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(fmt.Sprintf("Lead %d not found", id))
	}
	return apperrors.ServerError(err)
}
