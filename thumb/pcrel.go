package thumb

// alignedPC is the address a PC-relative literal load references: the
// next instruction address, rounded down to a word boundary.
func alignedPC(pc int) int {
	return (pc + 4) &^ 3
}

// LiteralImm computes the 8-bit word-count field for a PC-relative
// literal load at offset pc referencing a pool constant at offset
// literal. The distance must be a non-negative word multiple of at
// most 255 words.
func LiteralImm(pc int, literal int) (imm8 uint32, err error) {
	delta := literal - alignedPC(pc)
	if delta < 0 || delta%4 != 0 || delta>>2 > 0xff {
		err = ErrDisplacementRange(delta)
		return
	}

	imm8 = uint32(delta >> 2)
	return
}

// BranchImm computes the signed 8-bit halfword displacement field for
// a conditional branch at offset pc to target. Targets are offsets
// captured before the branch is emitted, so forward references are
// rejected outright.
func BranchImm(pc int, target int) (imm8 uint32, err error) {
	if target > pc {
		err = ErrDisplacementRange(target - pc)
		return
	}

	offset := target - (pc + 4)
	if offset%2 != 0 {
		err = ErrDisplacementRange(offset)
		return
	}

	half := offset >> 1
	if half < -128 || half > 127 {
		err = ErrDisplacementRange(offset)
		return
	}

	imm8 = uint32(half) & 0xff
	return
}
