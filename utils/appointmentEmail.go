package utils

import (
	"ChronicStable/config"
	"ChronicStable/models"
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"
)

// Mailer sends appointment confirmation emails. Construction fails soft: a
// nil Mailer skips sending, so the scheduling flow never depends on SMTP.
type Mailer struct {
	host string
	port int
	user string
	pass string
}

// NewMailer returns a Mailer when SMTP settings are present, nil otherwise.
func NewMailer(cfg *config.AppConfig) *Mailer {
	if !cfg.MailEnabled() {
		return nil
	}
	return &Mailer{host: cfg.SMTPHost, port: cfg.SMTPPort, user: cfg.SMTPUser, pass: cfg.SMTPPass}
}

// SendAppointmentConfirmation emails the patient about a newly scheduled
// appointment. Best effort: callers log failures and carry on.
func (m *Mailer) SendAppointmentConfirmation(patient *models.Patient, appointment *models.Appointment) error {
	if m == nil {
		return nil
	}
	to := contactEmail(patient.ContactInformation)
	if to == "" {
		log.Printf("No email on file for patient %d, skipping confirmation", patient.ID)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Appointment Confirmation")

	when := appointment.DateTime.Format("2006-01-02 15:04")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYour appointment has been scheduled for %s.\nPurpose: %s\n\nChronicStable",
		patient.Name, when, appointment.Purpose))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

// contactEmail pulls the email address out of the free-form contact field,
// which stores "email, phone".
func contactEmail(contact string) string {
	for _, part := range strings.Split(contact, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "@") {
			return part
		}
	}
	return ""
}
