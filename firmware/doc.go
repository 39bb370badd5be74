// Package firmware builds flat flash images for the STM32 simulator.
//
// A Builder makes one forward pass over the image: vector table,
// padding, code body, literal pool, finalize. The write cursor doubles
// as the program counter for all PC-relative math and never moves
// backward. Branch targets are offsets captured before the loop body
// they close, so only backward branches can be encoded; a general
// assembler would need a second pass over a symbol table. Literal pool
// slots sit at a fixed offset after all code, handed out in
// reservation order.
package firmware
