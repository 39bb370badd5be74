package script

import (
	"github.com/ezrec/thumbgen/translate"
)

var f = translate.From

// ErrCharacter reports a character argument that is not one byte.
type ErrCharacter string

func (err ErrCharacter) Error() string {
	return f("'%v' is not a single character", string(err))
}
