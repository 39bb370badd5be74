package firmware

import (
	"github.com/ezrec/thumbgen/thumb"
)

// Send stores r0 to the UART data register and busy-waits until TXE
// sets. Live inputs: uart holds the USART base address, r0 holds the
// byte. Clobbers r1 (status) and r2 (TXE mask); no other side effects.
func (b *Builder) Send(uart thumb.Reg) (err error) {
	if err = b.Emit(thumb.MakeStr(thumb.R0, uart, UART_DR)); err != nil {
		return
	}

	poll := b.Label()
	if err = b.Emit(thumb.MakeLdr(thumb.R1, uart, UART_SR)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeMov(thumb.R2, UART_SR_TXE)); err != nil {
		return
	}
	if err = b.Emit(thumb.MakeTst(thumb.R1, thumb.R2)); err != nil {
		return
	}
	err = b.BranchEQ(poll)
	return
}

// Putc sends one immediate byte out the UART and busy-waits for
// completion. Live inputs: uart holds the USART base address.
// Clobbers r0, r1, r2.
func (b *Builder) Putc(uart thumb.Reg, c byte) (err error) {
	if err = b.Emit(thumb.MakeMov(thumb.R0, uint32(c))); err != nil {
		return
	}

	err = b.Send(uart)
	return
}
