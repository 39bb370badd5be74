package thumb

import (
	"github.com/ezrec/thumbgen/translate"
)

var f = translate.From

// ErrOperandRange reports a register or immediate outside its
// encodable range.
type ErrOperandRange struct {
	Field string
	Value int64
}

func (err ErrOperandRange) Error() string {
	return f("operand %v value %v out of range", err.Field, err.Value)
}

// ErrAlignment reports a memory byte offset that is not a word
// multiple.
type ErrAlignment uint32

func (err ErrAlignment) Error() string {
	return f("offset %v is not a multiple of 4", uint32(err))
}

// ErrDisplacementRange reports a PC-relative distance or scaled offset
// that does not fit its instruction field.
type ErrDisplacementRange int

func (err ErrDisplacementRange) Error() string {
	return f("displacement %v not encodable", int(err))
}
