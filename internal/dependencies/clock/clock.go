package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct {
	loc *time.Location
}

// New creates a new RealClock reporting local time
func New() *RealClock {
	return &RealClock{}
}

// NewInLocation creates a RealClock whose readings are expressed in loc
func NewInLocation(loc *time.Location) *RealClock {
	return &RealClock{loc: loc}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	if c.loc != nil {
		return time.Now().In(c.loc)
	}
	return time.Now()
}
