package elf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubDefaults(t *testing.T) {
	assert := assert.New(t)

	header := Stub{}.Bytes()
	assert.Equal(HeaderSize, len(header))

	assert.Equal([]byte("\x7fELF"), header[:4])
	assert.Equal(byte(ELFCLASS32), header[4])
	assert.Equal(byte(ELFDATA2LSB), header[5])
	assert.Equal(byte(EV_CURRENT), header[6])

	le := binary.LittleEndian
	assert.Equal(uint16(ET_EXEC), le.Uint16(header[16:]))
	assert.Equal(uint16(EM_ARM), le.Uint16(header[18:]))
	assert.Equal(uint32(EV_CURRENT), le.Uint32(header[20:]))
	assert.Equal(FLASH_BASE, le.Uint32(header[24:]))
	assert.Zero(le.Uint32(header[28:]))
	assert.Zero(le.Uint32(header[32:]))
	assert.Equal(EF_ARM_EABI_VER5, le.Uint32(header[36:]))
	assert.Equal(uint16(HeaderSize), le.Uint16(header[40:]))
	assert.Equal(uint16(32), le.Uint16(header[42:]))
	assert.Zero(le.Uint16(header[44:]))
	assert.Equal(uint16(40), le.Uint16(header[46:]))
	assert.Zero(le.Uint16(header[48:]))
	assert.Zero(le.Uint16(header[50:]))
}

func TestStubOverrides(t *testing.T) {
	assert := assert.New(t)

	header := Stub{
		Entry:   0x08000040,
		Machine: 0x3E,
		Flags:   1,
	}.Bytes()

	le := binary.LittleEndian
	assert.Equal(uint16(0x3E), le.Uint16(header[18:]))
	assert.Equal(uint32(0x08000040), le.Uint32(header[24:]))
	assert.Equal(uint32(1), le.Uint32(header[36:]))
}
