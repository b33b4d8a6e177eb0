package resource

const CreatedEvent EventType = "created"

type (
	// EventType identifies the type of event
	EventType string

	// Event wraps a payload published by a broker, e.g. a log message.
	Event[T any] struct {
		Type    EventType
		Payload T
	}
)
