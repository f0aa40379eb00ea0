package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/config"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrChannelDisabled is returned when a notification channel has no credentials.
var ErrChannelDisabled = errors.New("notification channel not configured")

// Notifier delivers rent reminders.
type Notifier interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, plain, html string) error
	SendSMS(ctx context.Context, toPhone, body string) error
}

// MessagingNotifier sends email through SendGrid and SMS through Twilio.
type MessagingNotifier struct {
	sendgridClient *sendgrid.Client
	twilioClient   *twilio.RestClient
	fromName       string
	fromEmail      string
	fromPhone      string
	sandbox        bool
}

func NewMessagingNotifier(cfg *config.Config) *MessagingNotifier {
	n := &MessagingNotifier{
		fromName:  constants.DefaultFromName,
		fromEmail: cfg.LDFlag_SendgridFromEmail,
		fromPhone: cfg.TwilioFromPhone,
		sandbox:   cfg.LDFlag_SendgridSandboxMode,
	}
	if n.fromEmail == "" {
		n.fromEmail = constants.DefaultFromEmail
	}
	if cfg.SendGridAPIKey != "" {
		n.sendgridClient = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	} else {
		utils.Logger.Warn("SENDGRID_API_KEY not set; reminder emails are disabled")
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromPhone != "" {
		n.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	} else {
		utils.Logger.Warn("Twilio credentials not set; reminder SMS are disabled")
	}
	return n
}

func (n *MessagingNotifier) SendEmail(ctx context.Context, toName, toEmail, subject, plain, html string) error {
	if n.sendgridClient == nil {
		return ErrChannelDisabled
	}
	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)
	if n.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	resp, err := n.sendgridClient.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: sendgrid returned %d", utils.ErrExternalServiceFailure, resp.StatusCode)
	}
	return nil
}

func (n *MessagingNotifier) SendSMS(_ context.Context, toPhone, body string) error {
	if n.twilioClient == nil {
		return ErrChannelDisabled
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(n.fromPhone)
	params.SetBody(body)

	if _, err := n.twilioClient.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}
