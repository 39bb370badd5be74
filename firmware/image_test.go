package firmware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageEmit(t *testing.T) {
	assert := assert.New(t)

	im := NewImage(16)
	assert.Equal(0, im.Pos())

	assert.NoError(im.Emit16(0x1234))
	assert.Equal(2, im.Pos())

	assert.NoError(im.Emit32(0xAABBCCDD))
	assert.Equal(6, im.Pos())

	assert.Equal([]byte{0x34, 0x12, 0xDD, 0xCC, 0xBB, 0xAA}, im.Bytes())
}

func TestImagePad(t *testing.T) {
	assert := assert.New(t)

	im := NewImage(16)
	assert.NoError(im.Emit16(0xE7FE))
	assert.NoError(im.PadTo(8))
	assert.Equal(8, im.Pos())
	assert.Equal([]byte{0xFE, 0xE7, 0, 0, 0, 0, 0, 0}, im.Bytes())

	// Padding to the cursor itself is a no-op.
	assert.NoError(im.PadTo(8))
	assert.Equal(8, im.Pos())

	// Padding backward is a hard failure, not a silent no-op.
	var padErr *ErrPadBackward
	err := im.PadTo(4)
	assert.ErrorAs(err, &padErr)
	assert.Equal(8, padErr.At)
	assert.Equal(4, padErr.Target)
}

func TestImageCapacity(t *testing.T) {
	assert := assert.New(t)

	im := NewImage(6)
	assert.NoError(im.Emit32(1))

	var capErr *ErrCapacity
	assert.ErrorAs(im.Emit32(2), &capErr)
	assert.Equal(4, capErr.At)
	assert.Equal(6, capErr.Capacity)

	// A halfword still fits; the next one does not.
	assert.NoError(im.Emit16(0xBEEF))
	assert.ErrorAs(im.Emit16(0xBEEF), &capErr)
	assert.ErrorAs(im.PadTo(8), &capErr)
}
