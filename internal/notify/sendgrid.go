package notify

import (
	"context"
	"fmt"

	"aura-crm/internal/models"
	"aura-crm/pkg/logger"
	"aura-crm/pkg/metrics"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridNotifier struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGridNotifier returns a SendGrid-backed notifier.
func NewSendGridNotifier(apiKey, fromEmail, fromName string) Notifier {
	return &sendgridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
	}
}

func (n *sendgridNotifier) NewLead(ctx context.Context, lead *models.Lead, client *models.User) error {
	subject := fmt.Sprintf("New lead #%d", lead.ID)
	body := fmt.Sprintf("A new lead was created by %s (%s), status %q.", client.Name, client.Email, lead.Status)
	return n.send(ctx, "new_lead", subject, body, client)
}

func (n *sendgridNotifier) NewMessage(ctx context.Context, comm *models.Communication, recipient *models.User) error {
	subject := fmt.Sprintf("New message on lead #%d", comm.LeadID)
	body := fmt.Sprintf("You have a new message:\n\n%s", comm.Message)
	return n.send(ctx, "new_message", subject, body, recipient)
}

func (n *sendgridNotifier) send(ctx context.Context, kind, subject, body string, to *models.User) error {
	if to == nil || to.Email == "" {
		return nil
	}

	message := mail.NewSingleEmail(n.from, subject, mail.NewEmail(to.Name, to.Email), body, "")
	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		logger.GlobalLogger.Errorf("sendgrid %s notification failed: %v", kind, err)
		return err
	}
	if resp.StatusCode >= 400 {
		logger.GlobalLogger.Errorf("sendgrid %s notification rejected: status=%d body=%s", kind, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	metrics.NotificationsSentTotal.WithLabelValues(kind).Inc()
	return nil
}
