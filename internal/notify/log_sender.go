package notify

import (
	"context"

	"github.com/astroline/astroline-server/internal/logger"
)

// LogSender logs messages instead of sending them. It stands in for a
// real SMS provider in development; note it writes phone numbers and
// message bodies to the log.
type LogSender struct {
	logger *logger.Logger
}

// NewLogSender creates a new LogSender.
func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{
		logger: logger,
	}
}

// Send logs the message.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("send sms",
		"phone", msg.Phone,
		"body", msg.Body,
	)
	return nil
}
