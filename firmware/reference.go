// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package firmware

import (
	"github.com/ezrec/thumbgen/thumb"
)

// Reference emits the demonstration program: enable the UART and print
// "Hi!\n", run TIM2 with a reload of 50, poll three counter overflows
// printing "1\n" "2\n" "3\n", then halt. The builder must be fresh.
func (b *Builder) Reference() (image []byte, err error) {
	lit_uart := b.AddLiteral(USART1_BASE)
	lit_tim2 := b.AddLiteral(TIM2_BASE)
	lit_cr1 := b.AddLiteral(UART_CR1_UE | UART_CR1_TE)

	if err = b.VectorTable(); err != nil {
		return
	}
	if err = b.PadToCode(); err != nil {
		return
	}

	// r4 and r5 stay live as peripheral bases for the whole program.
	if err = b.LoadLiteral(thumb.R4, lit_uart); err != nil {
		return
	}
	if err = b.LoadLiteral(thumb.R5, lit_tim2); err != nil {
		return
	}
	if err = b.LoadLiteral(thumb.R0, lit_cr1); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeStr(thumb.R0, thumb.R4, UART_CR1)); err != nil {
		return
	}

	for _, c := range []byte("Hi!\n") {
		if err = b.Putc(thumb.R4, c); err != nil {
			return
		}
	}

	// TIM2: reload 50, no prescale, counter on.
	timer := [](struct {
		value  uint32
		offset uint32
	}){
		{50, TIM_ARR},
		{0, TIM_PSC},
		{TIM_CR1_CEN, TIM_CR1},
	}
	for _, init := range timer {
		if err = b.Emit(thumb.MakeMov(thumb.R0, init.value)); err != nil {
			return
		}
		if err = b.Emit(thumb.MakeStr(thumb.R0, thumb.R5, init.offset)); err != nil {
			return
		}
	}

	// r7 counts overflows.
	if err = b.Emit(thumb.MakeMov(thumb.R7, 0)); err != nil {
		return
	}

	poll := b.Label()
	if err = b.Emit(thumb.MakeLdr(thumb.R0, thumb.R5, TIM_SR)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeMov(thumb.R1, TIM_SR_UIF)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeTst(thumb.R0, thumb.R1)); err != nil {
		return
	}
	if err = b.BranchEQ(poll); err != nil {
		return
	}

	// Overflow: clear the flag, count it, print the digit and newline.
	if err = b.Emit(thumb.MakeMov(thumb.R0, 0)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeStr(thumb.R0, thumb.R5, TIM_SR)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeAdd(thumb.R7, 1)); err != nil {
		return
	}

	if err = b.Emit(thumb.MakeMovReg(thumb.R0, thumb.R7)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeAdd(thumb.R0, '0')); err != nil {
		return
	}
	if err = b.Send(thumb.R4); err != nil {
		return
	}
	if err = b.Putc(thumb.R4, '\n'); err != nil {
		return
	}

	if err = b.Emit(thumb.MakeCmp(thumb.R7, 3)); err != nil {
		return
	}
	if err = b.BranchNE(poll); err != nil {
		return
	}

	if err = b.Halt(); err != nil {
		return
	}

	if err = b.Pool(); err != nil {
		return
	}

	image, err = b.Finalize()
	return
}

// Reference builds the demonstration program with a fresh builder.
func Reference(config Config) (image []byte, err error) {
	return NewBuilder(config).Reference()
}
