// Package email sends notification e-mails over SMTP.
package email

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	SubjectTag  string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer sender
	logger logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, log logger.Interface) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		logger: log,
	}
}

func (s *SMTPEmailService) SendNotificationEmail(to, subject, message string) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient address is empty")
	}

	if s.config.SubjectTag != "" {
		subject = fmt.Sprintf("[%s] %s", s.config.SubjectTag, subject)
	}

	escaped := strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<hr>
			<p style="color:#6c757d;font-size:12px">Você recebeu esta mensagem porque as notificações por e-mail estão ativas.</p>
		</body>
		</html>
	`, html.EscapeString(subject), escaped)

	plainBody := fmt.Sprintf("%s\n\n%s\n", subject, message)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Warnw("failed to send email", "to", to, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", to, "subject", subject)
	return nil
}

// LogOnlyMailer records messages in the log instead of sending them. It is
// used when e-mail delivery is disabled.
type LogOnlyMailer struct {
	logger logger.Interface
}

func NewLogOnlyMailer(log logger.Interface) *LogOnlyMailer {
	return &LogOnlyMailer{logger: log}
}

func (m *LogOnlyMailer) SendNotificationEmail(to, subject, _ string) error {
	m.logger.Infow("email delivery disabled, message dropped", "to", to, "subject", subject)
	return nil
}
