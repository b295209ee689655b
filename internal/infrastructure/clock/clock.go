package clock

import "time"

// System reads the wall clock.
type System struct {
	Location *time.Location
}

func (c System) Now() time.Time {
	if c.Location != nil {
		return time.Now().In(c.Location)
	}
	return time.Now()
}

// Fake returns a fixed time until advanced.
type Fake struct {
	now time.Time
}

func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

func (c *Fake) Now() time.Time {
	return c.now
}

func (c *Fake) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
