package mailer

import (
	"fmt"

	"go-ems/internal/shared/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	SendWelcomeEmail(toEmail, fullName string) error
}

type mailer struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

func New(cfg config.EmailConfig) Mailer {
	return &mailer{cfg: cfg, logger: zap.L().Named("mailer")}
}

func (m *mailer) SendWelcomeEmail(toEmail, fullName string) error {
	if !m.cfg.Enabled {
		m.logger.Debug("email disabled, skipping welcome mail", zap.String("to", toEmail))
		return nil
	}

	subject := "Welcome to the team"
	body := m.welcomeBody(fullName)

	return m.send(toEmail, subject, body)
}

func (m *mailer) welcomeBody(fullName string) string {
	return fmt.Sprintf(`
<html>
<body>
	<p>Hi %s,</p>
	<p>Your employee record has been created in the employee management system.
	Your manager will share your login details with you shortly.</p>
	<p>This message was sent automatically, please do not reply.</p>
</body>
</html>
`, fullName)
}

func (m *mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	m.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
