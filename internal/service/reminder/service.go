// Package reminder bridges the notification scan and the external push
// surface. The scan decides what needs attention; this service only formats
// and hands each entry to the webhook, without persisting or deduplicating
// anything between runs.
package reminder

import (
	"context"

	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/derive"
	"github.com/mamadbah2/rabbitry/pkg/clients/push"
)

// NotificationSource supplies the current attention list.
type NotificationSource interface {
	Notifications() []derive.Notification
}

// Service pushes due reminders through the configured webhook.
type Service struct {
	source NotificationSource
	client push.Client
	logger *zap.Logger
}

// NewService wires a reminder service instance.
func NewService(source NotificationSource, client push.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, client: client, logger: logger}
}

// SendDueReminders rescans the collections and pushes every entry. Failed
// sends are logged and skipped; the count of delivered reminders is returned.
func (s *Service) SendDueReminders(ctx context.Context) int {
	notifications := s.source.Notifications()

	var sent int
	for _, n := range notifications {
		msg := push.Message{
			Title:   n.Title,
			Body:    n.Message,
			Tag:     n.ID,
			DueDate: n.DueDate,
		}
		if err := s.client.Send(ctx, msg); err != nil {
			s.logger.Error("failed to push reminder", zap.String("id", n.ID), zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("reminders pushed", zap.Int("sent", sent), zap.Int("scanned", len(notifications)))
	}
	return sent
}
