package notify

import (
	"context"

	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
)

var _ model.Notifier = (*Log)(nil)

// Log writes codes to the service log instead of sending them.
// It is meant for local development only.
type Log struct {
	logger *logger.Logger
}

func NewLog(l *logger.Logger) *Log {
	return &Log{logger: l}
}

func (n *Log) SendCode(ctx context.Context, email, code string) error {
	n.logger.InfoContext(ctx, "Notifier: login code", "email", email, "code", code)
	return nil
}

func (n *Log) SendResetCode(ctx context.Context, email, code string) error {
	n.logger.InfoContext(ctx, "Notifier: password reset code", "email", email, "code", code)
	return nil
}
