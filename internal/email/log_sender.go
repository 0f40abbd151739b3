package email

import (
	"context"
	"errors"

	"jobportal/internal/logger"
)

// LogSender пишет письма в лог. Используется, если SMTP не настроен.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return errors.New("no recipients specified")
	}
	logger.CtxInfo(ctx, "Email (log only)", "to", email.To, "subject", email.Subject)
	return nil
}
