package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/department-store/internal/events"
)

// NotificationService records department events for operators.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to every department event type.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllTypes {
		n.dispatcher.Subscribe(eventType, n.handleEvent)
	}
}

func (n *NotificationService) handleEvent(_ context.Context, event events.Event) error {
	n.logger.Info("department event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Int64("department_id", event.DepartmentID),
		zap.Any("payload", event.Payload))
	return nil
}
