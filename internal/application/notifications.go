package application

import (
	"sync"
	"time"

	"github.com/bnema/witrix-cli/internal/domain"
	"github.com/bnema/witrix-cli/internal/ports"
)

const (
	TickInterval                = 50 * time.Millisecond
	DefaultNotificationDuration = 4 * time.Second
)

// NotificationScheduler keeps transient notifications and ages them on a
// shared ticker. The ticker only runs while at least one notification is
// active.
type NotificationScheduler struct {
	clock ports.Clock

	mu     sync.Mutex
	items  []domain.Notification
	nextID int64
	ticker ports.Ticker
	stop   chan struct{}
}

func NewNotificationScheduler(clock ports.Clock) *NotificationScheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &NotificationScheduler{clock: clock}
}

// Post adds a notification and returns its id. A non-positive duration
// falls back to DefaultNotificationDuration.
func (s *NotificationScheduler) Post(message string, duration time.Duration) int64 {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.items = append(s.items, domain.Notification{
		ID:        s.nextID,
		Message:   message,
		CreatedAt: s.clock.Now(),
		Duration:  duration,
	})
	if s.ticker == nil {
		s.startLocked()
	}

	return s.nextID
}

func (s *NotificationScheduler) PostDefault(message string) int64 {
	return s.Post(message, DefaultNotificationDuration)
}

// Dismiss removes id. Unknown ids are ignored.
func (s *NotificationScheduler) Dismiss(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if len(s.items) == 0 {
		s.stopLocked()
	}
}

// Tick recomputes progress and drops notifications whose duration elapsed.
func (s *NotificationScheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.DoneAt(now) {
			continue
		}
		item.Progress = item.ProgressAt(now)
		kept = append(kept, item)
	}
	s.items = kept

	if len(s.items) == 0 {
		s.stopLocked()
	}
}

func (s *NotificationScheduler) Active() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Notification(nil), s.items...)
}

// Running reports whether the shared ticker is live.
func (s *NotificationScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ticker != nil
}

// Close drops every notification and stops the ticker.
func (s *NotificationScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.stopLocked()
}

func (s *NotificationScheduler) startLocked() {
	s.ticker = s.clock.NewTicker(TickInterval)
	s.stop = make(chan struct{})
	go s.run(s.ticker.C(), s.stop)
}

func (s *NotificationScheduler) stopLocked() {
	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	close(s.stop)
	s.ticker = nil
	s.stop = nil
}

func (s *NotificationScheduler) run(ticks <-chan time.Time, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticks:
			s.Tick()
		}
	}
}
