package testutil

import "sync"

// CountingWarner records every warning it receives
type CountingWarner struct {
	mu       sync.Mutex
	messages []string
}

func (w *CountingWarner) Warn(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = append(w.messages, msg)
}

// WarnCount returns how many warnings were received so far
func (w *CountingWarner) WarnCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.messages)
}

// Messages returns a copy of the received warnings
func (w *CountingWarner) Messages() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.messages))
	copy(out, w.messages)
	return out
}
