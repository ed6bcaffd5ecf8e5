package service

import (
	"errors"
	"sync"
	"time"
)

var ErrCooldown = errors.New("dice are cooling down")

// Cooldown debounces dice triggers per key with a fixed delay.
type Cooldown struct {
	mu    sync.Mutex
	delay time.Duration
	last  map[string]time.Time
	now   func() time.Time
}

func NewCooldown(delay time.Duration) *Cooldown {
	return &Cooldown{delay: delay, last: map[string]time.Time{}, now: time.Now}
}

// Allow records an attempt for key and reports whether the previous
// accepted attempt is at least delay old.
func (c *Cooldown) Allow(key string) bool {
	if c == nil || c.delay <= 0 {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if t, ok := c.last[key]; ok && now.Sub(t) < c.delay {
		return false
	}
	c.last[key] = now
	// prune expired keys once the map gets large
	if len(c.last) > 1024 {
		for k, t := range c.last {
			if now.Sub(t) >= c.delay {
				delete(c.last, k)
			}
		}
	}
	return true
}
