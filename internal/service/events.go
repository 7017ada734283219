package service

// EventPublisher is satisfied by *queue.Publisher.
type EventPublisher interface {
	Publish(topic string, data any)
}

func publish(p EventPublisher, topic string, data any) {
	if p == nil {
		return
	}
	p.Publish(topic, data)
}
