package email

import (
	"context"
	"fmt"

	"github.com/sannty/salescrm/config"
	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/pkg/logger"
)

// Service delivers outbound email. The current transport writes messages to
// the structured log; swapping in a real provider only changes send.
type Service struct {
	cfg *config.Config
	log logger.Logger
}

// NewService creates a new email service
func NewService(cfg *config.Config, log logger.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

func (s *Service) send(to, subject, body string) error {
	s.log.Info("email queued",
		"from", fmt.Sprintf("%s <%s>", s.cfg.EmailFromName, s.cfg.EmailFrom),
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}

// SendWelcome greets a newly registered user.
func (s *Service) SendWelcome(ctx context.Context, u *ent.User) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour account is ready. Sign in at %s to get started.\n",
		u.FirstName, s.cfg.FrontendURL,
	)
	return s.send(u.Email, "Welcome aboard", body)
}

// SendOverdueDigest tells a user how many of their tasks went overdue.
func (s *Service) SendOverdueDigest(ctx context.Context, u *ent.User, tasks []*ent.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	body := fmt.Sprintf("Hi %s,\n\nYou have %d overdue task(s):\n", u.FirstName, len(tasks))
	for _, t := range tasks {
		body += fmt.Sprintf("  - %s (due %s)\n", t.Title, t.DueDate.Format("2006-01-02"))
	}
	return s.send(u.Email, fmt.Sprintf("%d overdue tasks need attention", len(tasks)), body)
}
