package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/lead-exchange/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) send(to, subject, templateName string, data any) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("email template read failed: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("email template render failed: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}

// SendLeadUnlocked delivers the full contact details of a purchased lead to
// the winning broker.
func (s *EmailSender) SendLeadUnlocked(payload queue.LeadSoldPayload) error {
	data := LeadUnlockedEmailData{
		BrokerName: payload.BrokerName,
		LeadName:   payload.LeadName,
		LeadEmail:  payload.LeadEmail,
		LeadPhone:  payload.LeadPhone,
		Segment:    payload.Segment,
		State:      payload.State,
		PriceLabel: fmt.Sprintf("$%d", payload.AmountCents/100),
	}

	subject := fmt.Sprintf("Lead unlocked: %s (%s)", payload.LeadName, payload.State)
	return s.send(payload.BrokerEmail, subject, "lead_unlocked.html", data)
}

// SendQuizConfirmation acknowledges a borrower's quiz submission.
func (s *EmailSender) SendQuizConfirmation(to, firstName, segment, readinessScore string) error {
	data := QuizConfirmationEmailData{
		FirstName:      firstName,
		Segment:        segment,
		ReadinessScore: readinessScore,
	}

	subject := fmt.Sprintf("Thanks %s, your home loan readiness result is in", firstName)
	return s.send(to, subject, "quiz_confirmation.html", data)
}
