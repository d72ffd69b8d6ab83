// Package clock supplies the reference time queries are answered against.
package clock

import (
	"sync"
	"time"
	_ "time/tzdata" // timezone lookups must not depend on the host's zoneinfo
)

// DefaultTimezone is the civil zone timetables are published in.
const DefaultTimezone = "Europe/Madrid"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a fixed, settable time.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// MinutesSinceMidnight converts t to minutes elapsed since local midnight in loc.
func MinutesSinceMidnight(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}
