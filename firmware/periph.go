package firmware

// Peripheral map of the simulator target, from its datasheet subset.
// Register offsets are relative to the peripheral base.
const (
	USART1_BASE = uint32(0x40013800)
	UART_SR     = uint32(0x00)
	UART_DR     = uint32(0x04)
	UART_CR1    = uint32(0x0C)

	UART_SR_TXE = uint32(1) << 7  // Transmit data register empty.
	UART_CR1_UE = uint32(1) << 13 // USART enable.
	UART_CR1_TE = uint32(1) << 3  // Transmitter enable.

	TIM2_BASE = uint32(0x40000000)
	TIM_CR1   = uint32(0x00)
	TIM_SR    = uint32(0x10)
	TIM_PSC   = uint32(0x28)
	TIM_ARR   = uint32(0x2C)

	TIM_CR1_CEN = uint32(1) << 0 // Counter enable.
	TIM_SR_UIF  = uint32(1) << 0 // Update (overflow) flag.
)
