package notify

import (
	"context"
	"sync"
)

// MemorySender records sent messages for inspection in tests.
type MemorySender struct {
	mu       sync.Mutex
	messages []Message
	// FailFor makes Send return an error for matching phone numbers.
	FailFor map[string]error
}

func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) Send(_ context.Context, msg Message) error {
	if err, ok := s.FailFor[msg.Phone]; ok {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (s *MemorySender) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}
