package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventCompanyCreated, func(ctx context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "e1", Type: EventCompanyCreated})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "e1", received[0].ID)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventCompanyCreated, func(ctx context.Context, event Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		order = append(order, "first")
		return errors.New("handler failed")
	})
	dispatcher.Subscribe(EventUserRegistered, func(ctx context.Context, event Event) error {
		order = append(order, "second")
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
