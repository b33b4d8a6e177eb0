package pubsub

import (
	"context"
	"testing"

	"github.com/leg100/tabpage/internal/resource"
	"github.com/stretchr/testify/assert"
)

func TestBroker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroker[string](nil)
	sub := b.Subscribe(ctx)

	b.Publish(resource.CreatedEvent, "overview")

	got := <-sub
	assert.Equal(t, resource.Event[string]{Type: resource.CreatedEvent, Payload: "overview"}, got)
}

func TestBroker_UnsubscribeOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	b := NewBroker[string](nil)
	sub := b.Subscribe(ctx)
	cancel()

	// channel is closed once the context is canceled
	_, ok := <-sub
	assert.False(t, ok)
}

type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Error(msg string, args ...any) {
	l.msgs = append(l.msgs, msg)
}

func TestBroker_FullSubscriber(t *testing.T) {
	logger := &recordingLogger{}
	b := NewBroker[int](logger)
	sub := b.Subscribe(context.Background())

	for i := 0; i <= subBufferSize; i++ {
		b.Publish(resource.CreatedEvent, i)
	}

	// drain buffered events; the channel is then closed
	var n int
	for range sub {
		n++
	}
	assert.Equal(t, subBufferSize, n)
	assert.Equal(t, []string{"unsubscribed full subscriber"}, logger.msgs)
}
