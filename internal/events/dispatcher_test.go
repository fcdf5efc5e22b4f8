package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	channel  string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, payload []byte) error {
	f.channel = channel
	f.payloads = append(f.payloads, payload)
	return f.err
}

func TestInMemoryDispatcherDeliversByType(t *testing.T) {
	d := NewInMemoryDispatcher()
	var created, deleted int
	d.Subscribe(EventDepartmentCreated, func(context.Context, Event) error { created++; return nil })
	d.Subscribe(EventDepartmentDeleted, func(context.Context, Event) error { deleted++; return nil })

	require.NoError(t, d.Publish(context.Background(), NewEvent(EventDepartmentCreated, 1, nil)))
	require.NoError(t, d.Publish(context.Background(), NewEvent(EventDepartmentCreated, 2, nil)))

	assert.Equal(t, 2, created)
	assert.Equal(t, 0, deleted)
}

func TestInMemoryDispatcherRunsAllHandlersOnError(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")
	var calls int
	d.Subscribe(EventDepartmentUpdated, func(context.Context, Event) error { calls++; return boom })
	d.Subscribe(EventDepartmentUpdated, func(context.Context, Event) error { calls++; return nil })

	err := d.Publish(context.Background(), NewEvent(EventDepartmentUpdated, 1, nil))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestRedisDispatcherPublishesJSON(t *testing.T) {
	pub := &fakePublisher{}
	d := NewRedisDispatcher(pub, "departments.events")
	var local int
	d.Subscribe(EventDepartmentCreated, func(context.Context, Event) error { local++; return nil })

	event := NewEvent(EventDepartmentCreated, 7, DepartmentPayload{Name: "Engineering", Location: "Building A"})
	require.NoError(t, d.Publish(context.Background(), event))

	assert.Equal(t, 1, local)
	assert.Equal(t, "departments.events", pub.channel)
	require.Len(t, pub.payloads, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(pub.payloads[0], &decoded))
	assert.Equal(t, event.ID, decoded["id"])
	assert.Equal(t, "department_created", decoded["type"])
	assert.EqualValues(t, 7, decoded["department_id"])
	assert.Equal(t, map[string]any{"name": "Engineering", "location": "Building A"}, decoded["payload"])
}

func TestRedisDispatcherReportsPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("connection refused")}
	d := NewRedisDispatcher(pub, "departments.events")

	err := d.Publish(context.Background(), NewEvent(EventTableDropped, 0, nil))
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewEventStampsIDAndTime(t *testing.T) {
	a := NewEvent(EventDepartmentDeleted, 3, nil)
	b := NewEvent(EventDepartmentDeleted, 3, nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}
