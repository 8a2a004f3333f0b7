package timezone

import "time"

// Clock returns "now" in the operating timezone.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

func NewClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return ToAppTime(c.at)
}

// FixedClock always reports at, converted to the operating timezone.
func FixedClock(at time.Time) Clock {
	return fixedClock{at: at}
}
