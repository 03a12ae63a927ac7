package clock

import (
	"sync"
	"time"
)

// TimeProvider is a source of the current time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameTimer measures the time between consecutive host frames
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
}

func NewFrameTimer(provider TimeProvider) *FrameTimer {
	return &FrameTimer{
		provider: provider,
		last:     provider.Now(),
	}
}

// Elapsed returns the time since the previous call (or Reset) and starts a
// new frame
func (f *FrameTimer) Elapsed() time.Duration {
	now := f.provider.Now()
	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Reset forgets time spent since the last frame, e.g. while the host was
// not pumping frames
func (f *FrameTimer) Reset() {
	f.last = f.provider.Now()
}
