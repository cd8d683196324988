package headless

import "time"

// Waiter blocks for a duration.
type Waiter interface {
	Wait(d time.Duration)
}

// Limiter blocks until the next frame may start.
type Limiter interface {
	Wait()
}

// VirtualClock is a clock that only moves when waited on. It serves as the
// game clock, the Waiter and (through FrameLimiter) the Limiter, so a run is
// instant and fully deterministic.
type VirtualClock struct {
	now time.Duration
}

// NewVirtualClock creates a clock at zero.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Elapsed returns the virtual time.
func (c *VirtualClock) Elapsed() time.Duration {
	return c.now
}

// Wait advances the virtual time by d.
func (c *VirtualClock) Wait(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// FrameLimiter advances a virtual clock by one frame per Wait.
type FrameLimiter struct {
	clock *VirtualClock
	frame time.Duration
}

// NewFrameLimiter creates a limiter for fps frames per second.
func NewFrameLimiter(clock *VirtualClock, fps int) *FrameLimiter {
	return &FrameLimiter{clock: clock, frame: frameDuration(fps)}
}

func (l *FrameLimiter) Wait() {
	l.clock.Wait(l.frame)
}

// SleepWaiter waits in real time.
type SleepWaiter struct{}

func (SleepWaiter) Wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// TickerLimiter caps a loop at a fixed rate in real time.
type TickerLimiter struct {
	ticker *time.Ticker
}

// NewTickerLimiter creates a limiter for fps frames per second.
func NewTickerLimiter(fps int) *TickerLimiter {
	return &TickerLimiter{ticker: time.NewTicker(frameDuration(fps))}
}

func (l *TickerLimiter) Wait() {
	<-l.ticker.C
}

// Stop releases the ticker.
func (l *TickerLimiter) Stop() {
	l.ticker.Stop()
}

func frameDuration(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
