package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/config"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/events"
)

// IdentitySource is the subscription half of the identity provider, enough
// for a long-lived server-side watcher.
type IdentitySource interface {
	Subscribe(fn func(*domain.Identity)) (unsubscribe func())
}

// NotificationService handles emitting notifications for domain events.
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
	n.dispatcher.Subscribe(events.EventAccountRegistered, n.handleAccountRegistered)
	n.dispatcher.Subscribe(events.EventAccountApproved, n.handleAccountApproved)
	n.dispatcher.Subscribe(events.EventAccountRejected, n.handleAccountRejected)
	n.dispatcher.Subscribe(events.EventConsultationBooked, n.handleConsultationBooked)
	n.dispatcher.Subscribe(events.EventConsultationConfirmed, n.handleConsultationStatus)
	n.dispatcher.Subscribe(events.EventConsultationCancelled, n.handleConsultationStatus)
}

// WatchIdentity holds a process-lifetime subscription on the identity broker,
// so every sign-in and sign-out emitted there has at least one server-side
// consumer. Returns the unsubscribe function.
func (n *NotificationService) WatchIdentity(source IdentitySource) func() {
	if source == nil {
		return func() {}
	}
	return source.Subscribe(func(identity *domain.Identity) {
		if identity == nil {
			n.logger.Info("identity signed out")
			return
		}
		n.logger.Info("identity signed in",
			zap.String("identity_id", identity.ID),
			zap.String("email", identity.Email))
	})
}

func (n *NotificationService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountRegistered", zap.String("profile_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAccountApproved(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountApproved", zap.String("profile_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAccountRejected(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountRejected", zap.String("profile_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleConsultationBooked(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationBooked", zap.String("consultation_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleConsultationStatus(ctx context.Context, event events.Event) error {
	n.logger.Info("ConsultationStatusChanged", zap.String("consultation_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
