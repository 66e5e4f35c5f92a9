package app

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastExpiredMsg runs a toast expiry callback on the UI loop.
type toastExpiredMsg struct {
	fire func()
}

type scheduledFunc struct {
	d time.Duration
	f func()
}

// TickScheduler implements toast.Scheduler on top of tea.Tick. Callbacks
// are queued when scheduled and turned into tick commands by Drain, so
// expiry runs inside Update rather than on a timer goroutine.
type TickScheduler struct {
	mu     sync.Mutex
	queued []scheduledFunc
}

// NewTickScheduler returns an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// AfterFunc implements toast.Scheduler.
func (s *TickScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued = append(s.queued, scheduledFunc{d: d, f: f})
}

// Drain returns one tick command per queued callback, or nil.
func (s *TickScheduler) Drain() tea.Cmd {
	s.mu.Lock()
	queued := s.queued
	s.queued = nil
	s.mu.Unlock()

	if len(queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(queued))
	for i, q := range queued {
		f := q.f
		cmds[i] = tea.Tick(q.d, func(time.Time) tea.Msg {
			return toastExpiredMsg{fire: f}
		})
	}
	return tea.Batch(cmds...)
}
