package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendDeletionWarning(toEmail, documentType string, deadlineAt time.Time) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderName, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		clientURL:   clientURL,
	}
}

// SendDeletionWarning tells one recipient that the scheduled consequence of
// their disagreement is coming up, and how to reverse it.
func (s *emailService) SendDeletionWarning(toEmail, documentType string, deadlineAt time.Time) error {
	tpl := TemplateForDocument(documentType)
	if tpl == nil {
		return fmt.Errorf("no email template for document type %q", documentType)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Action required: %s disagreement", tpl.DisplayName))

	reviewLink := fmt.Sprintf("%s/settings/legal", s.clientURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Scheduled deletion notice</h2>
			<p>You (or your church administrator) declined the updated <b>%s</b>.</p>
			<p>If the disagreement is not withdrawn, %s on <b>%s</b>.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Review your decision</a>
			<p>If you are happy with this outcome, no action is needed.</p>
		</div>
	`, tpl.DisplayName, tpl.Consequence, deadlineAt.Format("January 2, 2006"), reviewLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send deletion warning to %s: %w", toEmail, err)
	}
	return nil
}
