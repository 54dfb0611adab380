package email

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/wneessen/go-mail"
)

const maxRetries = 3

// ProposalSummary is the per-shift slice of a readjustment report included in
// the notification body.
type ProposalSummary struct {
	Date       string
	ShiftTime  string
	Candidates []string
}

// Service defines the interface for sending scheduling notifications
type Service interface {
	SendReadjustmentReport(employeeName string, cancelled int, proposals []ProposalSummary) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) Service {
	return &emailServiceImpl{cfg: cfg}
}

// SendReadjustmentReport mails the manager the cancelled-shift summary and the
// replacement candidates found for each affected shift.
func (s *emailServiceImpl) SendReadjustmentReport(employeeName string, cancelled int, proposals []ProposalSummary) error {
	var body strings.Builder
	fmt.Fprintf(&body, "Approved absence for %s cancelled %d shift(s).\n\n", employeeName, cancelled)
	for _, p := range proposals {
		fmt.Fprintf(&body, "%s %s\n", p.Date, p.ShiftTime)
		if len(p.Candidates) == 0 {
			body.WriteString("  No replacement candidates found.\n")
			continue
		}
		for i, c := range p.Candidates {
			fmt.Fprintf(&body, "  %d. %s\n", i+1, c)
		}
	}

	subject := fmt.Sprintf("Schedule readjusted: %s", employeeName)
	return s.send(s.cfg.ManagerTo, subject, body.String())
}

func (s *emailServiceImpl) send(to, subject, textBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" || to == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(s.cfg.Port),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := client.DialAndSend(msg)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
