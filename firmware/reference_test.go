package firmware

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/thumbgen/thumb"
)

func TestReferenceImage(t *testing.T) {
	assert := assert.New(t)

	image, err := Reference(DefaultConfig)
	assert.NoError(err)
	assert.Equal(0xCC, len(image))

	// Vector table: initial SP, then the Thumb-bit reset vector.
	assert.Equal([]byte{0xF0, 0x4F, 0x00, 0x20, 0x41, 0x00, 0x00, 0x08}, image[:8])

	le := binary.LittleEndian

	words := map[int]uint16{
		0x40: 0x4C1F, // ldr r4, [pc, #0x7C]
		0x42: 0x4D20, // ldr r5, [pc, #0x80]
		0x44: 0x4820, // ldr r0, [pc, #0x80]
		0x46: 0x60E0, // str r0, [r4, #0x0C]
		0x48: 0x2048, // mov r0, #'H'
		0xB0: 0xD1E9, // bne back to the counter loop
		0xB2: 0xE7FE, // b .
	}
	for offset, word := range words {
		assert.Equal(word, le.Uint16(image[offset:]), "%#04x", offset)
	}

	pool := map[int]uint32{
		0xC0: 0x40013800,
		0xC4: 0x40000000,
		0xC8: 0x00002008,
	}
	for offset, word := range pool {
		assert.Equal(word, le.Uint32(image[offset:]), "%#04x", offset)
	}

	// The padding gap is all zeroes.
	for offset := 8; offset < 0x40; offset++ {
		assert.Zero(image[offset], "%#04x", offset)
	}

	// Every code halfword decodes as one of the supported forms.
	for offset := 0x40; offset < 0xB4; offset += 2 {
		_, ok := thumb.Decode(le.Uint16(image[offset:]))
		assert.True(ok, "%#04x", offset)
	}
}

func TestReferenceDeterministic(t *testing.T) {
	assert := assert.New(t)

	first, err := Reference(DefaultConfig)
	assert.NoError(err)

	second, err := Reference(DefaultConfig)
	assert.NoError(err)

	assert.Equal(first, second)
}
