package firmware

import (
	"encoding/binary"
	"slices"
)

// Image is the flash output buffer: fixed capacity, little endian,
// with a monotonically advancing write cursor.
type Image struct {
	data []byte
	pos  int
}

// NewImage creates an image with a fixed byte capacity.
func NewImage(capacity int) *Image {
	return &Image{data: make([]byte, capacity)}
}

// Pos returns the current write offset.
func (im *Image) Pos() int {
	return im.pos
}

// Emit16 writes one little-endian halfword at the cursor.
func (im *Image) Emit16(value uint16) (err error) {
	if im.pos+2 > len(im.data) {
		err = &ErrCapacity{At: im.pos, Capacity: len(im.data)}
		return
	}

	binary.LittleEndian.PutUint16(im.data[im.pos:], value)
	im.pos += 2
	return
}

// Emit32 writes one little-endian word at the cursor.
func (im *Image) Emit32(value uint32) (err error) {
	if im.pos+4 > len(im.data) {
		err = &ErrCapacity{At: im.pos, Capacity: len(im.data)}
		return
	}

	binary.LittleEndian.PutUint32(im.data[im.pos:], value)
	im.pos += 4
	return
}

// PadTo advances the cursor to offset with zero halfwords. The cursor
// never moves backward; a target already passed is an error, not a
// no-op.
func (im *Image) PadTo(offset int) (err error) {
	if offset < im.pos {
		err = &ErrPadBackward{At: im.pos, Target: offset}
		return
	}

	for im.pos < offset {
		if err = im.Emit16(0x0000); err != nil {
			return
		}
	}
	return
}

// Bytes returns a copy of the image trimmed to the highest written
// offset.
func (im *Image) Bytes() []byte {
	return slices.Clone(im.data[:im.pos])
}
