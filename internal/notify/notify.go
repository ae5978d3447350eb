package notify

import (
	"context"

	"aura-crm/internal/models"
)

// Notifier sends transactional email when leads and messages are created.
// Delivery failures are logged by implementations, never bubbled up to the
// request that triggered them.
type Notifier interface {
	NewLead(ctx context.Context, lead *models.Lead, client *models.User) error
	NewMessage(ctx context.Context, comm *models.Communication, recipient *models.User) error
}

type noopNotifier struct{}

// NewNoopNotifier returns a notifier that silently drops everything. Used
// when no SendGrid key is configured and in tests.
func NewNoopNotifier() Notifier {
	return &noopNotifier{}
}

func (noopNotifier) NewLead(ctx context.Context, lead *models.Lead, client *models.User) error {
	return nil
}

func (noopNotifier) NewMessage(ctx context.Context, comm *models.Communication, recipient *models.User) error {
	return nil
}
