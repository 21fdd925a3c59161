package policy

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock is returned when a time of day cannot be parsed.
var ErrInvalidClock = errors.New("invalid time of day")

// TimePolicy decides whether transfers are permitted at an instant.
type TimePolicy interface {
	Check(t time.Time) bool
}

// TimeFunc adapts a function to TimePolicy.
type TimeFunc func(t time.Time) bool

// Check calls f(t).
func (f TimeFunc) Check(t time.Time) bool { return f(t) }

// AlwaysOpen permits transfers at any time.
type AlwaysOpen struct{}

// Check always returns true.
func (AlwaysOpen) Check(time.Time) bool { return true }

// ServiceWindow permits transfers strictly after Begin and strictly before End,
// both given as offsets from midnight in Location. A window whose Begin is
// later than its End spans midnight.
type ServiceWindow struct {
	Begin    time.Duration
	End      time.Duration
	Location *time.Location
}

// DefaultServiceWindow is open after 05:59 and before 21:59 local time.
var DefaultServiceWindow = ServiceWindow{
	Begin: 5*time.Hour + 59*time.Minute,
	End:   21*time.Hour + 59*time.Minute,
}

// NewServiceWindow parses begin and end as "15:04" or "15:04:05".
// A nil loc means the instant's own location.
func NewServiceWindow(begin, end string, loc *time.Location) (ServiceWindow, error) {
	b, err := parseClock(begin)
	if err != nil {
		return ServiceWindow{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return ServiceWindow{}, err
	}
	return ServiceWindow{Begin: b, End: e, Location: loc}, nil
}

// Check reports whether t falls inside the window.
func (w ServiceWindow) Check(t time.Time) bool {
	if w.Location != nil {
		t = t.In(w.Location)
	}
	now := sinceMidnight(t)
	if w.Begin <= w.End {
		return now > w.Begin && now < w.End
	}
	return now > w.Begin || now < w.End
}

func sinceMidnight(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

func parseClock(s string) (time.Duration, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return sinceMidnight(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
}
