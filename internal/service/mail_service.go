package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"vendor_risk_backend/internal/config"

	"go.uber.org/zap"
)

// MailService sends transactional email over plain SMTP. Delivery failures
// are logged and never surfaced to the caller; account flows must not
// break because a relay is down.
type MailService struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

func NewMailService(cfg *config.Config, logger *zap.Logger) *MailService {
	return &MailService{Cfg: cfg, Logger: logger}
}

func (s *MailService) SendVerificationEmail(to, name, token string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.Cfg.Server.BaseURL, token)
	body := fmt.Sprintf(`<h2>Welcome to the Vendor Risk Platform, %s</h2>
<p>Please confirm your email address to activate your account:</p>
<p><a href="%s">Verify Email</a></p>
<p>This link expires in 24 hours. If you did not sign up, ignore this message.</p>`, name, link)

	s.send(to, "Verify your email address", body)
}

func (s *MailService) SendPasswordResetEmail(to, name, token string) {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.Cfg.Server.BaseURL, token)
	body := fmt.Sprintf(`<h2>Password Reset</h2>
<p>Hi %s, we received a request to reset your password:</p>
<p><a href="%s">Reset Password</a></p>
<p>This link expires in 1 hour. If you did not request a reset, ignore this message.</p>`, name, link)

	s.send(to, "Reset your password", body)
}

// SendAssessmentNotification tells an assignee a new assessment is waiting.
func (s *MailService) SendAssessmentNotification(to, name, vendorName string) {
	body := fmt.Sprintf(`<h2>New Assessment Assigned</h2>
<p>Hi %s, a risk assessment for vendor <strong>%s</strong> has been assigned to you.</p>
<p>Log in to the platform to complete it before the due date.</p>`, name, vendorName)

	s.send(to, "Assessment assigned: "+vendorName, body)
}

func (s *MailService) send(to, subject, htmlBody string) {
	if s.Cfg.SMTP.Host == "" {
		s.Logger.Debug("SMTP not configured, skipping email", zap.String("to", to))
		return
	}

	msg := strings.Join([]string{
		"From: " + s.Cfg.SMTP.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.Cfg.SMTP.Host, s.Cfg.SMTP.Port)
	var auth smtp.Auth
	if s.Cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", s.Cfg.SMTP.Username, s.Cfg.SMTP.Password, s.Cfg.SMTP.Host)
	}

	if err := smtp.SendMail(addr, auth, s.Cfg.SMTP.From, []string{to}, []byte(msg)); err != nil {
		s.Logger.Error("failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return
	}
	s.Logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
}
