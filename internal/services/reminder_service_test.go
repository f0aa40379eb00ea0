package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/config"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, plain, html string
}

type recordingNotifier struct {
	emails   []sentEmail
	sms      []string
	smsErr   map[string]error
	emailErr error
}

func (n *recordingNotifier) SendEmail(_ context.Context, _, toEmail, subject, plain, html string) error {
	if n.emailErr != nil {
		return n.emailErr
	}
	n.emails = append(n.emails, sentEmail{toEmail, subject, plain, html})
	return nil
}

func (n *recordingNotifier) SendSMS(_ context.Context, toPhone, _ string) error {
	if err := n.smsErr[toPhone]; err != nil {
		return err
	}
	n.sms = append(n.sms, toPhone)
	return nil
}

func TestReminderService_SendReminders(t *testing.T) {
	prop := &models.Property{ID: uuid.New(), Name: "Rose <PG>", TimeZone: "UTC"}

	overdue := monthly(uuid.New(), prop.ID, 500, d(2023, time.December, 20))
	overdue.Email = utils.Ptr("late@example.com")
	overdue.Mobile = utils.Ptr("+911111111111")

	dueSoon := monthly(uuid.New(), prop.ID, 800, d(2024, time.March, 12))
	dueSoon.Mobile = utils.Ptr("+912222222222")

	settled := monthly(uuid.New(), prop.ID, 800, d(2024, time.February, 25))
	settled.Email = utils.Ptr("fine@example.com")

	residents := newFakeResidentRepo(overdue, dueSoon, settled)
	residents.paid[settled.ID] = 800

	props := newFakePropertyRepo(prop)
	billing := NewBillingService(residents, props, time.UTC)
	billing.now = fixedClock(time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC))

	notifier := &recordingNotifier{smsErr: map[string]error{
		"+911111111111": ErrChannelDisabled,
		"+912222222222": errors.New("twilio down"),
	}}
	svc := NewReminderService(props, billing, notifier)

	out, err := svc.SendReminders(context.Background(), Scope{Role: models.RoleAdmin}, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, prop.ID, out.PropertyID)
	assert.Equal(t, 2, out.Residents)
	assert.Equal(t, 1, out.EmailsSent)
	assert.Equal(t, 0, out.SMSSent)
	assert.Equal(t, 1, out.Failures)

	require.Len(t, notifier.emails, 1)
	email := notifier.emails[0]
	assert.Equal(t, "late@example.com", email.to)
	assert.Equal(t, "Rent reminder from Rose <PG>", email.subject)
	assert.Contains(t, email.plain, "overdue by 1500.00")
	assert.Contains(t, email.html, "Rose &lt;PG&gt;")
}

func TestReminderService_UnknownProperty(t *testing.T) {
	svc := NewReminderService(newFakePropertyRepo(), nil, &recordingNotifier{})
	_, err := svc.SendReminders(context.Background(), Scope{Role: models.RoleAdmin}, uuid.New())

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrCodeNotFound, appErr.Code)
}

func TestMessagingNotifier_DisabledWithoutCredentials(t *testing.T) {
	n := NewMessagingNotifier(&config.Config{})
	ctx := context.Background()

	assert.ErrorIs(t, n.SendEmail(ctx, "A", "a@example.com", "s", "p", "<p>h</p>"), ErrChannelDisabled)
	assert.ErrorIs(t, n.SendSMS(ctx, "+910000000000", "hi"), ErrChannelDisabled)
}
