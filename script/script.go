// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script runs Starlark firmware build scripts.
//
// The simulator's demo programs were written as scripts driving emit
// helpers; this package keeps that front end. A script sees one
// builtin per build operation: literal, ldr_pc, mov, add, cmp, strw,
// ldrw, tst, mov_reg, pc, beq, bne, halt, putc, send. The memory forms
// are strw/ldrw (word store/load) so the Starlark str builtin stays
// usable, and the literal load is ldr_pc since load is a reserved
// word. Character arguments accept an int or a one-character string.
package script

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/thumbgen/firmware"
	"github.com/ezrec/thumbgen/thumb"
)

// asUint32 converts a Starlark int or one-character string argument.
func asUint32(value starlark.Value) (out uint32, err error) {
	if str, ok := starlark.AsString(value); ok {
		if len(str) != 1 {
			err = ErrCharacter(str)
			return
		}
		out = uint32(str[0])
		return
	}

	err = starlark.AsInt(value, &out)
	return
}

type opFunc func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// builtins binds one Starlark builtin per builder operation.
func builtins(b *firmware.Builder) (dict starlark.StringDict) {
	dict = starlark.StringDict{}

	bind := func(name string, fn opFunc) {
		dict[name] = starlark.NewBuiltin(name, fn)
	}

	// mov/add/cmp: register and 8-bit immediate (int or character).
	regImm := func(make func(reg thumb.Reg, imm uint32) thumb.Inst) opFunc {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var reg int
			var value starlark.Value
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &reg, &value); err != nil {
				return nil, err
			}
			imm, err := asUint32(value)
			if err != nil {
				return nil, err
			}
			return starlark.None, b.Emit(make(thumb.Reg(reg), imm))
		}
	}
	bind("mov", regImm(thumb.MakeMov))
	bind("add", regImm(thumb.MakeAdd))
	bind("cmp", regImm(thumb.MakeCmp))

	// strw/ldrw: two registers and a word-aligned byte offset.
	memOff := func(make func(rd, rn thumb.Reg, offset uint32) thumb.Inst) opFunc {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var rd, rn, offset int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 3, &rd, &rn, &offset); err != nil {
				return nil, err
			}
			return starlark.None, b.Emit(make(thumb.Reg(rd), thumb.Reg(rn), uint32(offset)))
		}
	}
	bind("strw", memOff(thumb.MakeStr))
	bind("ldrw", memOff(thumb.MakeLdr))

	// tst/mov_reg: two registers.
	regReg := func(make func(ra, rb thumb.Reg) thumb.Inst) opFunc {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var ra, rb int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &ra, &rb); err != nil {
				return nil, err
			}
			return starlark.None, b.Emit(make(thumb.Reg(ra), thumb.Reg(rb)))
		}
	}
	bind("tst", regReg(thumb.MakeTst))
	bind("mov_reg", regReg(thumb.MakeMovReg))

	bind("literal", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		word, err := asUint32(value)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(b.AddLiteral(word)), nil
	})

	bind("ldr_pc", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var rd, offset int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &rd, &offset); err != nil {
			return nil, err
		}
		return starlark.None, b.LoadLiteral(thumb.Reg(rd), offset)
	})

	bind("pc", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return starlark.MakeInt(b.Label()), nil
	})

	branch := func(emit func(target int) error) opFunc {
		return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var target int
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &target); err != nil {
				return nil, err
			}
			return starlark.None, emit(target)
		}
	}
	bind("beq", branch(b.BranchEQ))
	bind("bne", branch(b.BranchNE))

	bind("halt", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return starlark.None, b.Halt()
	})

	bind("putc", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var uart int
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &uart, &value); err != nil {
			return nil, err
		}
		c, err := asUint32(value)
		if err != nil {
			return nil, err
		}
		if err := checkImm8(c); err != nil {
			return nil, err
		}
		return starlark.None, b.Putc(thumb.Reg(uart), byte(c))
	})

	bind("send", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var uart int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &uart); err != nil {
			return nil, err
		}
		return starlark.None, b.Send(thumb.Reg(uart))
	})

	return
}

func checkImm8(value uint32) (err error) {
	if value > 0xff {
		err = &thumb.ErrOperandRange{Field: "char", Value: int64(value)}
	}
	return
}

// Run executes one build script against a fresh builder. The vector
// table and code padding are emitted before the script runs; the
// literal pool and finalize happen after it returns. src may be a
// string, bytes, or nil to read the named file.
func Run(b *firmware.Builder, filename string, src any) (image []byte, err error) {
	if err = b.VectorTable(); err != nil {
		return
	}
	if err = b.PadToCode(); err != nil {
		return
	}

	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	_, err = starlark.ExecFileOptions(opts, thread, filename, src, builtins(b))
	if err != nil {
		return
	}

	if err = b.Pool(); err != nil {
		return
	}

	image, err = b.Finalize()
	return
}

// Exec runs one build script with a fresh builder over config.
func Exec(filename string, src any, config firmware.Config) (image []byte, err error) {
	return Run(firmware.NewBuilder(config), filename, src)
}
