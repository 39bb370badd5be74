package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/thumbgen/firmware"
	"github.com/ezrec/thumbgen/thumb"
)

// demoScript is the demonstration program, written as a build script.
const demoScript = `
lit_uart = literal(0x40013800)
lit_tim2 = literal(0x40000000)
lit_cr1 = literal(0x2008)

ldr_pc(4, lit_uart)
ldr_pc(5, lit_tim2)
ldr_pc(0, lit_cr1)
strw(0, 4, 0x0C)

for c in "Hi!\n".elems():
    putc(4, c)

for value, offset in [(50, 0x2C), (0, 0x28), (1, 0x00)]:
    mov(0, value)
    strw(0, 5, offset)

mov(7, 0)

poll = pc()
ldrw(0, 5, 0x10)
mov(1, 1)
tst(0, 1)
beq(poll)

mov(0, 0)
strw(0, 5, 0x10)
add(7, 1)

mov_reg(0, 7)
add(0, "0")
send(4)
putc(4, "\n")

cmp(7, 3)
bne(poll)

halt()
`

func TestScriptDemo(t *testing.T) {
	assert := assert.New(t)

	image, err := Exec("demo.star", demoScript, firmware.DefaultConfig)
	assert.NoError(err)

	want, err := firmware.Reference(firmware.DefaultConfig)
	assert.NoError(err)

	assert.Equal(want, image)
}

func TestScriptErrors(t *testing.T) {
	assert := assert.New(t)

	var rangeErr *thumb.ErrOperandRange
	var alignErr thumb.ErrAlignment
	var dispErr thumb.ErrDisplacementRange
	var charErr ErrCharacter

	table := [](struct {
		name string
		src  string
		as   any
	}){
		{"reg high", `mov(8, 0)`, &rangeErr},
		{"imm wide", `mov(0, 0x100)`, &rangeErr},
		{"offset odd", `strw(0, 1, 2)`, &alignErr},
		{"branch forward", `beq(pc() + 4)`, &dispErr},
		{"putc string", `putc(4, "ab")`, &charErr},
		{"putc wide", `putc(4, 0x100)`, &rangeErr},
	}

	for _, entry := range table {
		_, err := Exec(entry.name, entry.src, firmware.DefaultConfig)
		assert.Error(err, entry.name)
		assert.ErrorAs(err, entry.as, entry.name)
	}
}

func TestScriptSyntaxError(t *testing.T) {
	assert := assert.New(t)

	_, err := Exec("broken.star", `mov(`, firmware.DefaultConfig)
	assert.Error(err)
}

func TestScriptCharacterArgs(t *testing.T) {
	assert := assert.New(t)

	// A one-character string and its code point build the same word.
	byChar, err := Exec("char.star", `mov(0, "H")`, firmware.DefaultConfig)
	assert.NoError(err)

	byInt, err := Exec("int.star", `mov(0, 72)`, firmware.DefaultConfig)
	assert.NoError(err)

	assert.Equal(byChar, byInt)
}
