package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type AssessmentSummary struct {
	SessionId          string
	SourceDocumentName string
	OverallScore       float64
	TotalRequirements  int
	Compliant          int
	Partial            int
	NonCompliant       int
	NotAddressed       int
}

type IEmailService interface {
	SendAssessmentSummary(toEmail string, summary AssessmentSummary) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendAssessmentSummary(toEmail string, summary AssessmentSummary) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Compliance Assessment Complete: %.1f%% compliant", summary.OverallScore))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Assessment Completed</h2>
			<p>Your compliance assessment for <b>%s</b> has finished.</p>
			<h1 style="color: #4CAF50;">%.1f%%</h1>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px;">Total requirements</td><td>%d</td></tr>
				<tr><td style="padding: 4px 12px;">Compliant</td><td>%d</td></tr>
				<tr><td style="padding: 4px 12px;">Partial</td><td>%d</td></tr>
				<tr><td style="padding: 4px 12px;">Non-compliant</td><td>%d</td></tr>
				<tr><td style="padding: 4px 12px;">Not addressed</td><td>%d</td></tr>
			</table>
			<p>Session reference: %s</p>
		</div>
	`, summary.SourceDocumentName, summary.OverallScore,
		summary.TotalRequirements, summary.Compliant, summary.Partial,
		summary.NonCompliant, summary.NotAddressed, summary.SessionId)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send assessment summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Assessment summary sent to %s\n", toEmail)
	return nil
}
