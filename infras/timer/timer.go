package timer

//go:generate go run go.uber.org/mock/mockgen -source=./timer.go -destination=./mocks/timer_mock.go -package=mocks

import (
	"sync"
	"time"

	"dueday/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in the app timezone.
var SystemClock Clock = ClockFunc(timezone.Now)

// Timer runs at most one pending callback per key. Scheduling a key that is already
// pending replaces it.
type Timer interface {
	Schedule(key string, fireAt time.Time, fire func())
	Cancel(key string) bool
	Pending(key string) bool
	Stop()
}

type entry struct {
	timer *time.Timer
	seq   uint64
}

type timerImpl struct {
	mu      sync.Mutex
	clock   Clock
	entries map[string]entry
	seq     uint64
	stopped bool
}

func New(clock Clock) Timer {
	if clock == nil {
		clock = SystemClock
	}

	return &timerImpl{
		clock:   clock,
		entries: make(map[string]entry),
	}
}

// Schedule registers fire to run at fireAt. A fireAt in the past fires immediately.
func (t *timerImpl) Schedule(key string, fireAt time.Time, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		log.Warn().Str("key", key).Msg("timer stopped, ignoring schedule")

		return
	}

	if old, ok := t.entries[key]; ok {
		old.timer.Stop()
	}

	t.seq++
	seq := t.seq

	delay := max(fireAt.Sub(t.clock.Now()), 0)

	t.entries[key] = entry{
		seq: seq,
		timer: time.AfterFunc(delay, func() {
			if t.claim(key, seq) {
				fire()
			}
		}),
	}

	log.Debug().Str("key", key).Time("fireAt", fireAt).Dur("delay", delay).Msg("timer scheduled")
}

// claim removes the entry if it still belongs to the firing timer. A timer that was
// replaced or cancelled after AfterFunc already started its goroutine loses here.
func (t *timerImpl) claim(key string, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok || e.seq != seq {
		return false
	}

	delete(t.entries, key)

	return true
}

func (t *timerImpl) Cancel(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[key]
	if !ok {
		return false
	}

	e.timer.Stop()
	delete(t.entries, key)

	return true
}

func (t *timerImpl) Pending(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.entries[key]

	return ok
}

// Stop cancels everything pending and rejects later schedules.
func (t *timerImpl) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, e := range t.entries {
		e.timer.Stop()
		delete(t.entries, key)
	}

	t.stopped = true
}
