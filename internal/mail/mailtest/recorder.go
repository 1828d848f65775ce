// Package mailtest provides a recording mail.Sender for tests.
package mailtest

import (
	"context"
	"sync"

	"chemical-leads-api/internal/mail"
)

// Recorder stores every message it is asked to send. When Fail is set the
// call whose one-based attempt number equals FailAt returns Fail instead;
// FailAt 0 fails every call.
type Recorder struct {
	mu       sync.Mutex
	Fail     error
	FailAt   int
	attempts int
	messages []mail.Message
}

func (r *Recorder) Send(_ context.Context, msg mail.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts++
	if r.Fail != nil && (r.FailAt == 0 || r.FailAt == r.attempts) {
		return r.Fail
	}
	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns the delivered messages in send order.
func (r *Recorder) Messages() []mail.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]mail.Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Attempts counts Send calls, failed ones included.
func (r *Recorder) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}
