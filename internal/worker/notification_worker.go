package worker

import (
	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/service"
)

// StartNotificationWorker registers notification handlers and attaches the
// long-lived identity watcher. The returned function stops the watcher.
func StartNotificationWorker(notificationService *service.NotificationService, source service.IdentitySource) func() {
	if notificationService == nil {
		return func() {}
	}
	notificationService.RegisterHandlers()
	return notificationService.WatchIdentity(source)
}
