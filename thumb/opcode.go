package thumb

import (
	"fmt"
)

// Reg is a low register identifier.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	R0 = Reg(0) // r0
	R1 = Reg(1) // r1
	R2 = Reg(2) // r2
	R3 = Reg(3) // r3
	R4 = Reg(4) // r4
	R5 = Reg(5) // r5
	R6 = Reg(6) // r6
	R7 = Reg(7) // r7
)

// Mnemonic is the instruction form tag.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_MOV_IMM = Mnemonic(0)  // mov
	OP_ADD_IMM = Mnemonic(1)  // add
	OP_CMP_IMM = Mnemonic(2)  // cmp
	OP_STR_IMM = Mnemonic(3)  // str
	OP_LDR_IMM = Mnemonic(4)  // ldr
	OP_LDR_PC  = Mnemonic(5)  // ldrpc
	OP_TST_REG = Mnemonic(6)  // tst
	OP_MOV_REG = Mnemonic(7)  // movs
	OP_BEQ     = Mnemonic(8)  // beq
	OP_BNE     = Mnemonic(9)  // bne
	OP_B_SELF  = Mnemonic(10) // b
)

// Inst is one instruction before encoding. Operands live in fixed
// slots: Rd is the destination or first register, Rn the base or second
// register, Imm an 8-bit immediate, byte offset, or resolved
// displacement field depending on the form.
type Inst struct {
	Op  Mnemonic
	Rd  Reg
	Rn  Reg
	Imm uint32
}

// MakeMov creates MOV Rd, #imm8.
func MakeMov(rd Reg, imm8 uint32) Inst {
	return Inst{Op: OP_MOV_IMM, Rd: rd, Imm: imm8}
}

// MakeAdd creates ADD Rd, #imm8.
func MakeAdd(rd Reg, imm8 uint32) Inst {
	return Inst{Op: OP_ADD_IMM, Rd: rd, Imm: imm8}
}

// MakeCmp creates CMP Rn, #imm8.
func MakeCmp(rn Reg, imm8 uint32) Inst {
	return Inst{Op: OP_CMP_IMM, Rd: rn, Imm: imm8}
}

// MakeStr creates STR Rd, [Rn, #offset]. The byte offset must be a
// word multiple.
func MakeStr(rd Reg, rn Reg, offset uint32) Inst {
	return Inst{Op: OP_STR_IMM, Rd: rd, Rn: rn, Imm: offset}
}

// MakeLdr creates LDR Rd, [Rn, #offset]. The byte offset must be a
// word multiple.
func MakeLdr(rd Reg, rn Reg, offset uint32) Inst {
	return Inst{Op: OP_LDR_IMM, Rd: rd, Rn: rn, Imm: offset}
}

// MakeLdrPc creates LDR Rd, [pc, #imm8*4] with an already resolved
// word-count field (see LiteralImm).
func MakeLdrPc(rd Reg, imm8 uint32) Inst {
	return Inst{Op: OP_LDR_PC, Rd: rd, Imm: imm8}
}

// MakeTst creates TST Rn, Rm.
func MakeTst(rn Reg, rm Reg) Inst {
	return Inst{Op: OP_TST_REG, Rd: rn, Rn: rm}
}

// MakeMovReg creates MOV Rd, Rs via LSL Rd, Rs, #0 for low registers.
func MakeMovReg(rd Reg, rs Reg) Inst {
	return Inst{Op: OP_MOV_REG, Rd: rd, Rn: rs}
}

// MakeBeq creates BEQ with an already resolved displacement field
// (see BranchImm).
func MakeBeq(imm8 uint32) Inst {
	return Inst{Op: OP_BEQ, Imm: imm8}
}

// MakeBne creates BNE with an already resolved displacement field.
func MakeBne(imm8 uint32) Inst {
	return Inst{Op: OP_BNE, Imm: imm8}
}

// MakeBSelf creates B . , the halt idle loop.
func MakeBSelf() Inst {
	return Inst{Op: OP_B_SELF}
}

func checkReg(field string, reg Reg) (err error) {
	if reg < R0 || reg > R7 {
		err = &ErrOperandRange{Field: field, Value: int64(reg)}
	}
	return
}

func checkImm8(field string, value uint32) (err error) {
	if value > 0xff {
		err = &ErrOperandRange{Field: field, Value: int64(value)}
	}
	return
}

// checkOffset5 validates a word-aligned byte offset whose scaled value
// must fit the 5-bit field of the memory forms.
func checkOffset5(offset uint32) (err error) {
	if offset%4 != 0 {
		err = ErrAlignment(offset)
		return
	}
	if offset>>2 > 0x1f {
		err = ErrDisplacementRange(offset)
	}
	return
}

// Encode packs the instruction fields into its 16-bit Thumb word.
func (inst Inst) Encode() (word uint16, err error) {
	switch inst.Op {
	case OP_MOV_IMM, OP_ADD_IMM, OP_CMP_IMM:
		if err = checkReg("rd", inst.Rd); err != nil {
			return
		}
		if err = checkImm8("imm", inst.Imm); err != nil {
			return
		}
		base := uint16(0x2000)
		switch inst.Op {
		case OP_ADD_IMM:
			base = 0x3000
		case OP_CMP_IMM:
			base = 0x2800
		}
		word = base | uint16(inst.Rd)<<8 | uint16(inst.Imm)
	case OP_STR_IMM, OP_LDR_IMM:
		if err = checkReg("rd", inst.Rd); err != nil {
			return
		}
		if err = checkReg("rn", inst.Rn); err != nil {
			return
		}
		if err = checkOffset5(inst.Imm); err != nil {
			return
		}
		base := uint16(0x6000)
		if inst.Op == OP_LDR_IMM {
			base = 0x6800
		}
		word = base | uint16(inst.Imm>>2)<<6 | uint16(inst.Rn)<<3 | uint16(inst.Rd)
	case OP_LDR_PC:
		if err = checkReg("rd", inst.Rd); err != nil {
			return
		}
		if err = checkImm8("imm", inst.Imm); err != nil {
			return
		}
		word = 0x4800 | uint16(inst.Rd)<<8 | uint16(inst.Imm)
	case OP_TST_REG:
		if err = checkReg("rn", inst.Rd); err != nil {
			return
		}
		if err = checkReg("rm", inst.Rn); err != nil {
			return
		}
		word = 0x4200 | uint16(inst.Rn)<<3 | uint16(inst.Rd)
	case OP_MOV_REG:
		if err = checkReg("rd", inst.Rd); err != nil {
			return
		}
		if err = checkReg("rs", inst.Rn); err != nil {
			return
		}
		word = uint16(inst.Rn)<<3 | uint16(inst.Rd)
	case OP_BEQ, OP_BNE:
		if err = checkImm8("disp", inst.Imm); err != nil {
			return
		}
		base := uint16(0xd000)
		if inst.Op == OP_BNE {
			base = 0xd100
		}
		word = base | uint16(inst.Imm)
	case OP_B_SELF:
		word = 0xe7fe
	default:
		err = &ErrOperandRange{Field: "op", Value: int64(inst.Op)}
	}

	return
}

// Decode recovers the instruction from an encoded word. ok is false
// for words outside the supported subset.
func Decode(word uint16) (inst Inst, ok bool) {
	ok = true

	switch {
	case word == 0xe7fe:
		inst = MakeBSelf()
	case word&0xf800 == 0x2000:
		inst = MakeMov(Reg(word>>8&7), uint32(word&0xff))
	case word&0xf800 == 0x2800:
		inst = MakeCmp(Reg(word>>8&7), uint32(word&0xff))
	case word&0xf800 == 0x3000:
		inst = MakeAdd(Reg(word>>8&7), uint32(word&0xff))
	case word&0xf800 == 0x4800:
		inst = MakeLdrPc(Reg(word>>8&7), uint32(word&0xff))
	case word&0xffc0 == 0x4200:
		inst = MakeTst(Reg(word&7), Reg(word>>3&7))
	case word&0xf800 == 0x6000:
		inst = MakeStr(Reg(word&7), Reg(word>>3&7), uint32(word>>6&0x1f)<<2)
	case word&0xf800 == 0x6800:
		inst = MakeLdr(Reg(word&7), Reg(word>>3&7), uint32(word>>6&0x1f)<<2)
	case word&0xff00 == 0xd000:
		inst = MakeBeq(uint32(word & 0xff))
	case word&0xff00 == 0xd100:
		inst = MakeBne(uint32(word & 0xff))
	case word&0xffc0 == 0x0000:
		// LSL Rd, Rs, #0 doubles as the low-register MOV.
		inst = MakeMovReg(Reg(word&7), Reg(word>>3&7))
	default:
		ok = false
	}

	return
}

// String returns an assembly-like rendering for verbose listings.
func (inst Inst) String() (out string) {
	switch inst.Op {
	case OP_MOV_IMM, OP_ADD_IMM, OP_CMP_IMM:
		out = fmt.Sprintf("%v %v, #%d", inst.Op, inst.Rd, inst.Imm)
	case OP_STR_IMM, OP_LDR_IMM:
		out = fmt.Sprintf("%v %v, [%v, #%d]", inst.Op, inst.Rd, inst.Rn, inst.Imm)
	case OP_LDR_PC:
		out = fmt.Sprintf("ldr %v, [pc, #%d]", inst.Rd, inst.Imm*4)
	case OP_TST_REG, OP_MOV_REG:
		out = fmt.Sprintf("%v %v, %v", inst.Op, inst.Rd, inst.Rn)
	case OP_BEQ, OP_BNE:
		out = fmt.Sprintf("%v 0x%02x", inst.Op, inst.Imm)
	case OP_B_SELF:
		out = "b ."
	default:
		out = fmt.Sprintf("%v?", inst.Op)
	}

	return
}
