package email

import (
	"fmt"

	"gemmarket_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over SMTP via gomail.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to string, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", p.cfg.Frontend.BaseURL, token)
	return p.Send(&Message{
		To:      []string{to},
		Subject: "Verify your GemMarket account",
		HTML:    renderVerificationEmail(link),
	})
}

func (p *SMTPProvider) SendPasswordReset(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", p.cfg.Frontend.BaseURL, token)
	return p.Send(&Message{
		To:      []string{to},
		Subject: "Reset your GemMarket password",
		HTML:    renderPasswordResetEmail(link),
	})
}

func (p *SMTPProvider) SendVerificationDecision(to string, approved bool, notes string) error {
	return p.Send(&Message{
		To:      []string{to},
		Subject: "Your professional profile review",
		HTML:    renderDecisionEmail(approved, notes),
	})
}
