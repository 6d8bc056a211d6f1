package pubsub

import (
	"sync"
)

var _ Publisher = (*MockPublisher)(nil)

// MockPublisher is a mock implementation of Publisher for testing.
// It is safe for concurrent use.
type MockPublisher struct {
	mu sync.Mutex

	// Spies for method calls
	SendMessageFunc func(topic EventType, data any) error

	// Call records
	SendMessageCalls []SendMessageCall
	CloseCalls       int
}

// SendMessageCall holds the arguments for a call to SendMessage.
type SendMessageCall struct {
	Topic EventType
	Data  any
}

// NewMock creates a new mock Publisher.
func NewMock() *MockPublisher {
	return &MockPublisher{}
}

// Reset clears all call records.
func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = nil
	m.CloseCalls = 0
}

// SendMessage records the call and executes the mock function if provided.
func (m *MockPublisher) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = append(m.SendMessageCalls, SendMessageCall{Topic: topic, Data: data})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
	return nil
}

// Calls returns a copy of the recorded SendMessage calls.
func (m *MockPublisher) Calls() []SendMessageCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SendMessageCall(nil), m.SendMessageCalls...)
}

// CallsFor returns the recorded SendMessage calls for one topic.
func (m *MockPublisher) CallsFor(topic EventType) []SendMessageCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []SendMessageCall
	for _, c := range m.SendMessageCalls {
		if c.Topic == topic {
			out = append(out, c)
		}
	}
	return out
}
