package services

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

const reminderEmailHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <p>Hi %s,</p>
  <p>%s</p>
  <p>Thank you,<br>%s</p>
</body>
</html>`

// ReminderService sends rent reminders to due-soon and overdue residents.
type ReminderService struct {
	propRepo repositories.PropertyRepository
	billing  *BillingService
	notifier Notifier
}

func NewReminderService(propRepo repositories.PropertyRepository, billing *BillingService, notifier Notifier) *ReminderService {
	return &ReminderService{propRepo: propRepo, billing: billing, notifier: notifier}
}

func reminderText(p *models.Property, st BillingStatus, rent float64) string {
	if st.Overdue() {
		return fmt.Sprintf("Your rent at %s is overdue by %.2f. Please clear the balance at the earliest.",
			p.Name, st.OverdueAmount)
	}
	return fmt.Sprintf("Your rent of %.2f at %s is due on %s.", rent, p.Name, st.NextBillingDate)
}

// SendReminders notifies every resident of the property who is due soon or
// overdue, by email and SMS where contact details exist.
func (s *ReminderService) SendReminders(ctx context.Context, scope Scope, propertyID uuid.UUID) (*dtos.ReminderResult, error) {
	p, err := loadProperty(ctx, s.propRepo, scope, propertyID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.billing.Evaluate(ctx, &p.ID)
	if err != nil {
		return nil, err
	}

	result := &dtos.ReminderResult{PropertyID: p.ID}
	subject := fmt.Sprintf(constants.ReminderEmailSubject, p.Name)
	for _, rb := range statuses {
		if !rb.Status.DueSoon && !rb.Status.Overdue() {
			continue
		}
		result.Residents++
		res := rb.Resident
		text := reminderText(p, rb.Status, res.Rent)

		if email := utils.Val(res.Email); email != "" {
			body := fmt.Sprintf(reminderEmailHTML, html.EscapeString(res.Name), html.EscapeString(text), html.EscapeString(p.Name))
			s.count(result, s.notifier.SendEmail(ctx, res.Name, email, subject, text, body), &result.EmailsSent, res.ID, "email")
		}
		if mobile := utils.Val(res.Mobile); mobile != "" {
			s.count(result, s.notifier.SendSMS(ctx, mobile, text), &result.SMSSent, res.ID, "sms")
		}
	}

	utils.Logger.Infof("Reminders for property %s: %d residents, %d emails, %d sms, %d failures",
		p.ID, result.Residents, result.EmailsSent, result.SMSSent, result.Failures)
	return result, nil
}

func (s *ReminderService) count(result *dtos.ReminderResult, err error, sent *int, residentID uuid.UUID, channel string) {
	switch {
	case err == nil:
		*sent++
	case errors.Is(err, ErrChannelDisabled):
	default:
		result.Failures++
		utils.Logger.WithError(err).Warnf("Failed to send %s reminder to resident %s", channel, residentID)
	}
}
