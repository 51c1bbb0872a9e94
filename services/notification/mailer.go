package notification

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"bookify/config"
	"bookify/utils"
)

// Mailer sends HTML mail over SMTP. With no host configured it becomes a
// no-op so the rest of the platform works without a mail account.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// NewMailerFromConfig builds a Mailer from the loaded application config.
func NewMailerFromConfig() *Mailer {
	cfg := config.AppConfig
	return &Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}
}

func (m *Mailer) Enabled() bool {
	return m.Host != ""
}

// Send delivers one HTML email. Unconfigured mailers log and drop the
// message without error.
func (m *Mailer) Send(to, subject, html string) error {
	logger := utils.GetLogger()
	if !m.Enabled() {
		logger.Info("SMTP not configured, skipping email",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	from := m.From
	if from == "" {
		from = m.Username
	}

	headers := fmt.Sprintf("From: %s <%s>\r\n", m.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg := []byte(headers + "\r\n" + html)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
