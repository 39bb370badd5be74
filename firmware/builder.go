// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package firmware

import (
	"log"

	"github.com/ezrec/thumbgen/thumb"
)

// Phase is the position in the fixed build sequence.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_VECTOR = Phase(0) // vector
	PHASE_PAD    = Phase(1) // pad
	PHASE_CODE   = Phase(2) // code
	PHASE_POOL   = Phase(3) // pool
	PHASE_DONE   = Phase(4) // done
)

// Config fixes the image layout and boot constants.
type Config struct {
	Capacity  int    // Flash window size in bytes.
	StackTop  uint32 // Initial stack pointer, stored at offset 0.
	ResetAddr uint32 // Absolute address of the first instruction.
	CodeStart int    // Offset of the first code halfword.
	PoolStart int    // Offset of the first literal pool slot.
}

// DefaultConfig matches the simulator memory map: a 1 KiB window of
// the flash mapped at 0x08000000, stack at the top of SRAM.
var DefaultConfig = Config{
	Capacity:  1024,
	StackTop:  0x20004FF0,
	ResetAddr: 0x08000040,
	CodeStart: 0x40,
	PoolStart: 0xC0,
}

// Builder emits one firmware image in a single uninterrupted forward
// pass. Every operation is valid in exactly one phase and the phase
// only ever advances; failures abort the build with no usable image.
type Builder struct {
	Verbose bool // If set, logs every emitted instruction.

	config Config
	image  *Image
	phase  Phase
	pool   []uint32
}

// NewBuilder creates a builder over a fresh image.
func NewBuilder(config Config) *Builder {
	return &Builder{
		config: config,
		image:  NewImage(config.Capacity),
	}
}

func (b *Builder) require(want Phase) (err error) {
	if b.phase != want {
		err = &ErrPhase{Have: b.phase, Want: want}
	}
	return
}

// Pos returns the current emission offset.
func (b *Builder) Pos() int {
	return b.image.Pos()
}

// VectorTable emits the initial stack pointer, then the reset handler
// address with its low bit set to select Thumb execution.
func (b *Builder) VectorTable() (err error) {
	if err = b.require(PHASE_VECTOR); err != nil {
		return
	}
	if err = b.image.Emit32(b.config.StackTop); err != nil {
		return
	}
	if err = b.image.Emit32(b.config.ResetAddr | 1); err != nil {
		return
	}

	b.phase = PHASE_PAD
	return
}

// PadToCode advances the cursor to the fixed code start offset.
func (b *Builder) PadToCode() (err error) {
	if err = b.require(PHASE_PAD); err != nil {
		return
	}
	if err = b.image.PadTo(b.config.CodeStart); err != nil {
		return
	}

	b.phase = PHASE_CODE
	return
}

// Emit encodes one instruction and writes it at the cursor.
func (b *Builder) Emit(inst thumb.Inst) (err error) {
	if err = b.require(PHASE_CODE); err != nil {
		return
	}

	word, err := inst.Encode()
	if err != nil {
		return
	}

	if b.Verbose {
		log.Printf("%04x: %04x  %v\n", b.Pos(), word, inst)
	}

	err = b.image.Emit16(word)
	return
}

// Label captures the current offset as a backward branch target.
// Call it before emitting the loop body the branch will close.
func (b *Builder) Label() int {
	return b.image.Pos()
}

// AddLiteral reserves the next fixed pool slot for a 32-bit constant
// and returns its image offset. Pool emits the slots in reservation
// order.
func (b *Builder) AddLiteral(value uint32) (offset int) {
	offset = b.config.PoolStart + 4*len(b.pool)
	b.pool = append(b.pool, value)
	return
}

// LoadLiteral emits a PC-relative load of the pool slot at offset into
// rd. The slot value is not yet in the image; only its offset matters
// here.
func (b *Builder) LoadLiteral(rd thumb.Reg, offset int) (err error) {
	if err = b.require(PHASE_CODE); err != nil {
		return
	}

	imm8, err := thumb.LiteralImm(b.Pos(), offset)
	if err != nil {
		return
	}

	err = b.Emit(thumb.MakeLdrPc(rd, imm8))
	return
}

func (b *Builder) branch(op thumb.Mnemonic, target int) (err error) {
	if err = b.require(PHASE_CODE); err != nil {
		return
	}

	imm8, err := thumb.BranchImm(b.Pos(), target)
	if err != nil {
		return
	}

	err = b.Emit(thumb.Inst{Op: op, Imm: imm8})
	return
}

// BranchEQ emits a conditional branch back to a captured label.
func (b *Builder) BranchEQ(target int) (err error) {
	return b.branch(thumb.OP_BEQ, target)
}

// BranchNE emits a conditional branch back to a captured label.
func (b *Builder) BranchNE(target int) (err error) {
	return b.branch(thumb.OP_BNE, target)
}

// Halt emits the branch-to-self idle loop.
func (b *Builder) Halt() (err error) {
	return b.Emit(thumb.MakeBSelf())
}

// Pool pads the cursor to the pool start and emits every reserved
// constant. Code that has overrun the pool start fails here.
func (b *Builder) Pool() (err error) {
	if err = b.require(PHASE_CODE); err != nil {
		return
	}
	if err = b.image.PadTo(b.config.PoolStart); err != nil {
		return
	}

	for _, value := range b.pool {
		if err = b.image.Emit32(value); err != nil {
			return
		}
	}

	b.phase = PHASE_POOL
	return
}

// Finalize returns the image trimmed to the last written byte.
func (b *Builder) Finalize() (image []byte, err error) {
	if err = b.require(PHASE_POOL); err != nil {
		return
	}

	image = b.image.Bytes()
	b.phase = PHASE_DONE
	return
}
