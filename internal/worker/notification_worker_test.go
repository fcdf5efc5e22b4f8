package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/department-store/internal/events"
)

func TestStartNotificationWorkerLogsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	require.NotNil(t, StartNotificationWorker(dispatcher, zap.New(core)))

	for _, eventType := range events.AllTypes {
		require.NoError(t, dispatcher.Publish(context.Background(), events.NewEvent(eventType, 1, nil)))
	}

	entries := logs.FilterMessage("department event").All()
	require.Len(t, entries, len(events.AllTypes))
	assert.Equal(t, string(events.EventTableCreated), entries[0].ContextMap()["event_type"])
}

func TestStartNotificationWorkerWithoutDispatcher(t *testing.T) {
	assert.Nil(t, StartNotificationWorker(nil, zap.NewNop()))
}
