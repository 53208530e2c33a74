package core

import "time"

// TimeProvider abstracts the clock so use cases can be tested with a fixed
// time.
type TimeProvider interface {
	Now() time.Time
}
