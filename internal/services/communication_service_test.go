package services

import (
	"testing"

	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/notify"
	"aura-crm/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommunicationService(db *gorm.DB) *CommunicationService {
	return NewCommunicationService(
		repositories.NewCommunicationRepository(db),
		repositories.NewLeadRepository(db),
		repositories.NewUserRepository(db),
		notify.NewNoopNotifier(),
	)
}

func TestCommunicationCreateRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommunicationService(db)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)
	lead := seedLead(t, db, client)

	_, err := svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{Message: "hello"})
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErrCode(t, err))
	assert.Contains(t, err.Error(), "Lead ID is required")

	_, err = svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{LeadID: &lead.ID})
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErrCode(t, err))
	assert.Contains(t, err.Error(), "Message is required")
}

func TestClientMessagesOnlyItsOwnLeads(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommunicationService(db)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)
	other := seedUser(t, db, "Client Two", "other@example.com", models.RoleClient)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	myLead := seedLead(t, db, client)
	otherLead := seedLead(t, db, other)

	comm, err := svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{
		LeadID:  &myLead.ID,
		Message: "Is the townhouse still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, client.ID, comm.SenderID)
	assert.Equal(t, myLead.ID, comm.LeadID)
	assert.False(t, comm.Read)

	_, err = svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{
		LeadID:  &otherLead.ID,
		Message: "hello",
	})
	assert.Equal(t, apperrors.ErrCodeForbidden, appErrCode(t, err))
	assert.Contains(t, err.Error(), "You can only message about your own leads")

	// agents message any lead
	_, err = svc.Create(testCtx, identityOf(agent), &models.CommunicationPayload{
		LeadID:  &otherLead.ID,
		Message: "Following up on your inquiry",
	})
	require.NoError(t, err)
}

func TestCommunicationCreateUnknownLead(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommunicationService(db)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)

	missing := uint(999)
	_, err := svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{
		LeadID:  &missing,
		Message: "hello",
	})
	assert.Equal(t, apperrors.ErrCodeNotFound, appErrCode(t, err))
}

func TestCommunicationListScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommunicationService(db)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)
	other := seedUser(t, db, "Client Two", "other@example.com", models.RoleClient)
	agent := seedUser(t, db, "Agent One", "agent@example.com", models.RoleAgent)

	myLead := seedLead(t, db, client)
	otherLead := seedLead(t, db, other)

	_, err := svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{LeadID: &myLead.ID, Message: "mine"})
	require.NoError(t, err)
	_, err = svc.Create(testCtx, identityOf(other), &models.CommunicationPayload{LeadID: &otherLead.ID, Message: "theirs"})
	require.NoError(t, err)

	mine, err := svc.List(testCtx, identityOf(client))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Message)

	all, err := svc.List(testCtx, identityOf(agent))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCommunicationReadFlag(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommunicationService(db)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)
	lead := seedLead(t, db, client)

	comm, err := svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{LeadID: &lead.ID, Message: "hello"})
	require.NoError(t, err)

	read := true
	updated, err := svc.Update(testCtx, identityOf(client), comm.ID, &models.CommunicationPayload{Read: &read})
	require.NoError(t, err)
	assert.True(t, updated.Read)
	require.NotNil(t, updated.ReadAt)

	read = false
	updated, err = svc.Update(testCtx, identityOf(client), comm.ID, &models.CommunicationPayload{Read: &read})
	require.NoError(t, err)
	assert.False(t, updated.Read)
	assert.Nil(t, updated.ReadAt)
}

func TestCommunicationDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := newCommunicationService(db)
	client := seedUser(t, db, "Client One", "client@example.com", models.RoleClient)
	other := seedUser(t, db, "Client Two", "other@example.com", models.RoleClient)
	lead := seedLead(t, db, client)

	comm, err := svc.Create(testCtx, identityOf(client), &models.CommunicationPayload{LeadID: &lead.ID, Message: "hello"})
	require.NoError(t, err)

	err = svc.Delete(testCtx, identityOf(other), comm.ID)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErrCode(t, err))
	assert.Contains(t, err.Error(), "You can only delete your own messages")

	require.NoError(t, svc.Delete(testCtx, identityOf(client), comm.ID))

	err = svc.Delete(testCtx, identityOf(client), comm.ID)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErrCode(t, err))
	assert.Contains(t, err.Error(), "Communication")
}
