package mailer

import (
	"fmt"

	"github.com/dendyelo/nooda-inventory/pkg/config"
	"gopkg.in/gomail.v2"
)

// Mailer envía correos vía SMTP. Lo usa el recordatorio diario; el core
// nunca depende de él.
type Mailer struct {
	cfg config.SMTPConfig
}

// New construye el mailer con la configuración SMTP.
func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send envía un correo de texto plano al destinatario.
func (m *Mailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.From == "" {
		return fmt.Errorf("mailer: SMTP_HOST y SMTP_FROM son requeridos")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
