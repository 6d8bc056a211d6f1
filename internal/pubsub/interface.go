package pubsub

// Publisher sends outcome events to the wagering layer.
type Publisher interface {
	SendMessage(topic EventType, data any) error
	Close() error
}
