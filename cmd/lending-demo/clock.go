package main

import (
	"sync"
	"time"
)

// demoClock is the engine clock of the demo; it only moves when the script jumps ahead.
type demoClock struct {
	mu  sync.Mutex
	now time.Time
}

func newDemoClock(start time.Time) *demoClock {
	return &demoClock{now: start}
}

func (c *demoClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *demoClock) jump(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Duration(days) * 24 * time.Hour)
}
