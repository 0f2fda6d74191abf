package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/config"
	"github.com/spec-kit/placement-service/internal/events"
)

// NotificationService emits webhook notifications for domain events. The
// webhook call itself is a stub; delivery is out of scope for this service.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleEvent)
	n.dispatcher.Subscribe(events.EventCompanyCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventCompanyStatusChanged, n.handleEvent)
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("domain event",
		zap.String("event_type", string(event.Type)),
		zap.String("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
