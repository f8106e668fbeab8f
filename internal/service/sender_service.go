package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"frontdesk/internal/config"
)

// SenderService delivers guest-facing confirmations over SendGrid and Twilio.
// Both channels are optional; unconfigured channels return an error the caller
// is expected to log and move on from.
type SenderService struct {
	cfg *config.Config
}

func NewSenderService(cfg *config.Config) *SenderService {
	return &SenderService{cfg: cfg}
}

func (s *SenderService) SendEmail(toEmail, toName, subject, plainTextContent, htmlContent string) error {
	if !s.cfg.EmailEnabled() {
		return fmt.Errorf("SendGrid is not configured")
	}

	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	log.Printf("Email sent to %s (subject: %s)", toEmail, subject)
	return nil
}

func (s *SenderService) SendSMS(toNumber, messageBody string) error {
	if !s.cfg.SMSEnabled() {
		return fmt.Errorf("Twilio is not configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.Printf("WARNING: destination number %q is not E.164; the SMS may fail", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   s.cfg.TwilioAccountSID,
		Password:   s.cfg.TwilioAuthToken,
		AccountSid: s.cfg.TwilioAccountSID,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("sending SMS via Twilio: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("SMS sent to %s (SID %s)", toNumber, *resp.Sid)
	}
	return nil
}
