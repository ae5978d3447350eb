package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"aura-crm/internal/authz"
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/notify"
	"aura-crm/internal/repositories"
	"aura-crm/pkg/logger"

	"gorm.io/gorm"
)

type CommunicationService struct {
	repo     repositories.CommunicationRepository
	leads    repositories.LeadRepository
	users    repositories.UserRepository
	notifier notify.Notifier
}

func NewCommunicationService(
	repo repositories.CommunicationRepository,
	leads repositories.LeadRepository,
	users repositories.UserRepository,
	notifier notify.Notifier,
) *CommunicationService {
	return &CommunicationService{
		repo:     repo,
		leads:    leads,
		users:    users,
		notifier: notifier,
	}
}

// Create posts a message on a lead's thread. Clients may only message about
// their own leads.
func (s *CommunicationService) Create(ctx context.Context, identity authz.Identity, payload *models.CommunicationPayload) (*models.Communication, error) {
	if payload.LeadID == nil {
		return nil, apperrors.BadRequest("Lead ID is required")
	}
	if payload.Message == "" {
		return nil, apperrors.BadRequest("Message is required")
	}

	lead, err := s.leads.FindByID(ctx, *payload.LeadID)
	if err != nil {
		return nil, mapLeadError(err, *payload.LeadID)
	}

	if err := authz.Authorize(identity, authz.ActionCreate, authz.ResourceCommunication, authz.Ownership{OwnerID: lead.UserID}); err != nil {
		return nil, err
	}

	comm := &models.Communication{
		LeadID:      lead.ID,
		SenderID:    identity.UserID,
		RecipientID: payload.RecipientID,
		Message:     payload.Message,
	}

	if err := s.repo.Create(ctx, comm); err != nil {
		return nil, apperrors.ServerError(err)
	}

	s.notifyNewMessage(ctx, identity, lead, comm)
	return comm, nil
}

func (s *CommunicationService) List(ctx context.Context, identity authz.Identity) ([]models.Communication, error) {
	var comms []models.Communication
	var err error
	if identity.Role == models.RoleClient {
		comms, err = s.repo.ListByLeadOwner(ctx, identity.UserID)
	} else {
		comms, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, apperrors.ServerError(err)
	}
	return comms, nil
}

// Update edits the message text or marks it read.
func (s *CommunicationService) Update(ctx context.Context, identity authz.Identity, id uint, payload *models.CommunicationPayload) (*models.Communication, error) {
	comm, lead, err := s.findWithLead(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(identity, authz.ActionUpdate, authz.ResourceCommunication, authz.Ownership{OwnerID: lead.UserID}); err != nil {
		return nil, err
	}

	if payload.Message != "" {
		comm.Message = payload.Message
	}
	if payload.Read != nil {
		comm.Read = *payload.Read
		if *payload.Read {
			now := time.Now()
			comm.ReadAt = &now
		} else {
			comm.ReadAt = nil
		}
	}

	if err := s.repo.Update(ctx, comm); err != nil {
		return nil, apperrors.ServerError(err)
	}
	return comm, nil
}

func (s *CommunicationService) Delete(ctx context.Context, identity authz.Identity, id uint) error {
	comm, lead, err := s.findWithLead(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.Authorize(identity, authz.ActionDelete, authz.ResourceCommunication, authz.Ownership{OwnerID: lead.UserID}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, comm.ID); err != nil {
		return apperrors.ServerError(err)
	}
	return nil
}

func (s *CommunicationService) findWithLead(ctx context.Context, id uint) (*models.Communication, *models.Lead, error) {
	comm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound(fmt.Sprintf("Communication %d not found", id))
		}
		return nil, nil, apperrors.ServerError(err)
	}
	lead, err := s.leads.FindByID(ctx, comm.LeadID)
	if err != nil {
		return nil, nil, mapLeadError(err, comm.LeadID)
	}
	return comm, lead, nil
}

// notifyNewMessage picks the most useful recipient: the explicit one when
// set, otherwise the assigned agent for client senders or the lead owner for
// agent senders.
func (s *CommunicationService) notifyNewMessage(ctx context.Context, identity authz.Identity, lead *models.Lead, comm *models.Communication) {
	var recipientID uint
	switch {
	case comm.RecipientID != nil:
		recipientID = *comm.RecipientID
	case identity.Role == models.RoleClient && lead.AssignedAgentID != nil:
		recipientID = *lead.AssignedAgentID
	case identity.Role != models.RoleClient:
		recipientID = lead.UserID
	default:
		return
	}

	recipient, err := s.users.FindByID(ctx, recipientID)
	if err != nil {
		logger.GlobalLogger.Errorf("message notification skipped, user %d lookup failed: %v", recipientID, err)
		return
	}
	if err := s.notifier.NewMessage(ctx, comm, recipient); err != nil {
		logger.GlobalLogger.Errorf("message notification failed: %v", err)
	}
}
