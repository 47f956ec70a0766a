// Package managers handles the sending of event confirmation mails using the
// Mailgun service and the Hermes package for email formatting.
package managers

import (
	"context"
	"fmt"
	"os"
	"time"

	"calendar-assistant/internal/utils"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/matcornic/hermes/v2"
	log "github.com/sirupsen/logrus"
)

// MailMgr is an interface that outlines the contract for email management.
// It includes a method for sending event confirmation emails to attendees.
type MailMgr interface {
	SendEventConfirmationMail(email, title, when, location string) error
}

// MailManager is a concrete implementation of the MailMgr interface.
// It uses the Mailgun service for sending emails and the Hermes package for formatting emails.
type MailManager struct {
	Hermes  *hermes.Hermes
	Mailgun *mailgun.MailgunImpl
}

var from = "Calendar Assistant <assistant@mail.calendar-assistant.app>"
var environment string

// NewMailManager creates a MailManager configured from the Mailgun
// environment variables.
func NewMailManager() MailMgr {
	log.Info("Initializing mail manager")
	environment = os.Getenv(utils.EnvironmentEnv)

	return &MailManager{
		Hermes: &hermes.Hermes{
			Product: hermes.Product{
				Name: "Calendar Assistant",
				Link: "https://calendar-assistant.app",
			},
		},
		Mailgun: mailgun.NewMailgun(os.Getenv(utils.MailgunDomainEnv), os.Getenv(utils.MailgunApiKeyEnv)),
	}
}

// SendEventConfirmationMail sends a confirmation email to the attendee after
// an event was added to the calendar. The email content is formatted using
// the Hermes package and sent using the Mailgun service.
func (mm *MailManager) SendEventConfirmationMail(email, title, when, location string) error {
	if environment != "production" {
		log.Info("Skipping confirmation mail in development mode")
		return nil
	}

	intros := []string{
		fmt.Sprintf("The event %q was added to your calendar for %s.", title, when),
	}
	if location != "" {
		intros = append(intros, fmt.Sprintf("It takes place at %s.", location))
	}

	mailBody := hermes.Email{
		Body: hermes.Body{
			Name:   email,
			Intros: intros,
			Outros: []string{
				"If you did not request this event, you can remove it from your calendar at any time.",
			},
		},
	}

	emailBody, err := mm.Hermes.GenerateHTML(mailBody)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(2*time.Second))
	defer cancel()

	message := mm.Mailgun.NewMessage(from, "Your event was added", "", email)
	message.SetHtml(emailBody)
	if _, _, err = mm.Mailgun.Send(ctx, message); err != nil {
		log.Warning("Error sending confirmation mail: " + err.Error())
		return err
	}

	log.Debug("Confirmation mail sent to ", email)
	return nil
}
