package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/department-store/internal/events"
	"github.com/spec-kit/department-store/internal/service"
)

// StartNotificationWorker subscribes the event logger to dispatcher.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"))
	notifications.RegisterHandlers()
	return notifications
}
