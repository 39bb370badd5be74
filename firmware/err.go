package firmware

import (
	"github.com/ezrec/thumbgen/translate"
)

var f = translate.From

// ErrCapacity reports a write that would land past the end of the
// flash window.
type ErrCapacity struct {
	At       int
	Capacity int
}

func (err ErrCapacity) Error() string {
	return f("write at %#x exceeds capacity %#x", err.At, err.Capacity)
}

// ErrPadBackward reports a pad target the cursor has already passed.
type ErrPadBackward struct {
	At     int
	Target int
}

func (err ErrPadBackward) Error() string {
	return f("pad target %#x behind cursor %#x", err.Target, err.At)
}

// ErrPhase reports a build operation invoked outside its phase.
type ErrPhase struct {
	Have Phase
	Want Phase
}

func (err ErrPhase) Error() string {
	return f("build phase is %v, operation requires %v", err.Have, err.Want)
}
