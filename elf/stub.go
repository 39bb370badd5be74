// Package elf renders the placeholder executable header handed to
// debugger front ends, so they can detect the target architecture over
// a GDB remote session without a real linked firmware.elf.
//
// The header stands alone: no program headers, no section headers, no
// cross-references to resolve.
package elf

import (
	"encoding/binary"
)

// HeaderSize is the size of an ELF32 file header.
const HeaderSize = 52

const (
	ELFCLASS32  = 1
	ELFDATA2LSB = 1
	EV_CURRENT  = 1
	ET_EXEC     = 2
	EM_ARM      = 0x28

	EF_ARM_EABI_VER5 = uint32(0x05000000)
)

// FLASH_BASE is the load address the simulator maps images at, and the
// default declared entry point.
const FLASH_BASE = uint32(0x08000000)

// Stub describes the placeholder header. Zero fields are filled with
// the ARM defaults by Bytes.
type Stub struct {
	Entry   uint32 // Declared entry point; the image base load address.
	Machine uint16 // Target machine identifier.
	Flags   uint32 // ABI flags.
}

// Bytes renders the 52-byte little-endian ELF32 header.
func (st Stub) Bytes() (header []byte) {
	entry := st.Entry
	if entry == 0 {
		entry = FLASH_BASE
	}
	machine := st.Machine
	if machine == 0 {
		machine = EM_ARM
	}
	flags := st.Flags
	if flags == 0 {
		flags = EF_ARM_EABI_VER5
	}

	header = make([]byte, HeaderSize)
	copy(header, "\x7fELF")
	header[4] = ELFCLASS32
	header[5] = ELFDATA2LSB
	header[6] = EV_CURRENT
	// EI_OSABI, EI_ABIVERSION and the identifier padding stay zero.

	le := binary.LittleEndian
	le.PutUint16(header[16:], ET_EXEC)
	le.PutUint16(header[18:], machine)
	le.PutUint32(header[20:], EV_CURRENT)
	le.PutUint32(header[24:], entry)
	le.PutUint32(header[28:], 0) // e_phoff: no program headers.
	le.PutUint32(header[32:], 0) // e_shoff: no section headers.
	le.PutUint32(header[36:], flags)
	le.PutUint16(header[40:], HeaderSize)
	le.PutUint16(header[42:], 32) // e_phentsize
	le.PutUint16(header[44:], 0)  // e_phnum
	le.PutUint16(header[46:], 40) // e_shentsize
	le.PutUint16(header[48:], 0)  // e_shnum
	le.PutUint16(header[50:], 0)  // e_shstrndx

	return
}
