// Package toast manages transient feedback messages with duplicate
// suppression and timed expiry.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/mealplanner/internal/model"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 4000 * time.Millisecond

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules on runtime timers. Callbacks run on their own
// goroutine.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Engine holds the visible toasts. It is safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	toasts  []model.Toast
	pending map[string]string // key -> toast id

	ttl   time.Duration
	sched Scheduler
	newID func() string
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithTTL sets the toast lifetime. Non-positive values are ignored.
func WithTTL(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.ttl = d
		}
	}
}

// WithScheduler sets the scheduler used for expiry.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithIDFunc sets the toast id generator.
func WithIDFunc(f func() string) Option {
	return func(e *Engine) { e.newID = f }
}

// WithClock sets the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an engine with no toasts.
func New(opts ...Option) *Engine {
	e := &Engine{
		pending: make(map[string]string),
		ttl:     DefaultTTL,
		sched:   TimerScheduler{},
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func key(v model.Variant, message string) string {
	return string(v) + ":" + message
}

// Show adds a toast unless an identical one is pending or visible. It
// returns the new toast and whether it was added.
func (e *Engine) Show(v model.Variant, message string) (model.Toast, bool) {
	e.mu.Lock()
	k := key(v, message)
	if _, ok := e.pending[k]; ok {
		e.mu.Unlock()
		return model.Toast{}, false
	}
	for _, t := range e.toasts {
		if t.Variant == v && t.Message == message {
			e.mu.Unlock()
			return model.Toast{}, false
		}
	}

	t := model.Toast{
		ID:        e.newID(),
		Variant:   v,
		Message:   message,
		CreatedAt: e.now(),
	}
	e.toasts = append(e.toasts, t)
	e.pending[k] = t.ID
	e.mu.Unlock()

	// Scheduled outside the lock so a synchronous scheduler may expire
	// the toast immediately.
	e.sched.AfterFunc(e.ttl, func() { e.expire(t.ID, k) })
	return t, true
}

// Success shows a success toast.
func (e *Engine) Success(message string) { e.Show(model.VariantSuccess, message) }

// Error shows an error toast.
func (e *Engine) Error(message string) { e.Show(model.VariantError, message) }

// Warning shows a warning toast.
func (e *Engine) Warning(message string) { e.Show(model.VariantWarning, message) }

// Info shows an info toast.
func (e *Engine) Info(message string) { e.Show(model.VariantInfo, message) }

// Dismiss removes the toast now. Unknown ids are ignored.
func (e *Engine) Dismiss(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, t := range e.toasts {
		if t.ID != id {
			continue
		}
		e.toasts = append(e.toasts[:i:i], e.toasts[i+1:]...)
		k := key(t.Variant, t.Message)
		if e.pending[k] == id {
			delete(e.pending, k)
		}
		return
	}
}

// expire runs when a toast's lifetime ends. The key is released only
// while it still belongs to id.
func (e *Engine) expire(id, k string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, t := range e.toasts {
		if t.ID == id {
			e.toasts = append(e.toasts[:i:i], e.toasts[i+1:]...)
			break
		}
	}
	if e.pending[k] == id {
		delete(e.pending, k)
	}
}

// Toasts returns the visible toasts in creation order.
func (e *Engine) Toasts() []model.Toast {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Toast(nil), e.toasts...)
}

// Len returns the number of visible toasts.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.toasts)
}
