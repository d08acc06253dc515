package clock

import "time"

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemLocal is the production clock. Snapshot names use the wall-clock
// time of the machine the tool runs on.
type SystemLocal struct{}

func (SystemLocal) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}
