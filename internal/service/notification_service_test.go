package service

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/config"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/session"
)

func TestWatchIdentityConsumesBrokerEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewNotificationService(nil, zap.New(core), config.NotificationConfig{})

	broker := session.NewBroker()
	stop := svc.WatchIdentity(broker)
	defer stop()

	broker.Emit(&domain.Identity{ID: "u1", Email: "u1@example.com"})
	broker.Emit(nil)

	if got := logs.FilterMessage("identity signed in").Len(); got != 1 {
		t.Errorf("signed-in entries = %d, want 1", got)
	}
	if got := logs.FilterMessage("identity signed out").Len(); got != 1 {
		t.Errorf("signed-out entries = %d, want 1", got)
	}
}

func TestWatchIdentityStopEndsDelivery(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := NewNotificationService(nil, zap.New(core), config.NotificationConfig{})

	broker := session.NewBroker()
	stop := svc.WatchIdentity(broker)
	stop()

	broker.Emit(&domain.Identity{ID: "u1"})
	if got := logs.Len(); got != 0 {
		t.Errorf("entries after unsubscribe = %d, want 0", got)
	}
}
