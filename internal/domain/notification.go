package domain

import "time"

// Notification is a transient message whose progress decays toward removal.
type Notification struct {
	ID        int64
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
	Progress  float64
}

// Elapsed is clamped at zero so a clock that steps backwards never yields
// negative progress.
func (n Notification) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(n.CreatedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (n Notification) ProgressAt(now time.Time) float64 {
	if n.Duration <= 0 {
		return 100
	}

	progress := float64(n.Elapsed(now)) / float64(n.Duration) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

func (n Notification) DoneAt(now time.Time) bool {
	return n.Elapsed(now) >= n.Duration
}
