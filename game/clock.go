package game

import (
	"sync"
	"time"
)

// maxFrameDelta caps a single frame's delta so a stalled tab or debugger does not
// fast-forward the game
const maxFrameDelta = 100 * time.Millisecond

// TimeProvider is the source of wall-clock readings for frame deltas
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

// Now returns the current time with monotonic clock reading
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
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

// GameClock accumulates game time. It only moves when Advance is called, which the
// engine does while playing, so every cooldown measured against it freezes on pause.
type GameClock struct {
	provider TimeProvider
	last     time.Time
	elapsed  time.Duration
}

// NewGameClock creates a clock at zero game time
func NewGameClock(provider TimeProvider) *GameClock {
	return &GameClock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Tick reads the provider and returns the clamped delta since the previous Tick.
// It does not advance game time.
func (c *GameClock) Tick() time.Duration {
	now := c.provider.Now()
	delta := now.Sub(c.last)
	c.last = now

	if delta < 0 {
		delta = 0
	}
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}
	return delta
}

// Advance adds d to game time
func (c *GameClock) Advance(d time.Duration) {
	c.elapsed += d
}

// NowMs returns game time in milliseconds
func (c *GameClock) NowMs() float64 {
	return float64(c.elapsed) / float64(time.Millisecond)
}

// Reset returns game time to zero
func (c *GameClock) Reset() {
	c.elapsed = 0
	c.last = c.provider.Now()
}
