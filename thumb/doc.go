// Package thumb encodes the 16-bit Thumb instruction subset understood
// by the STM32 simulator core.
//
// Instructions are a closed, tagged set: 8-bit immediate move, add and
// compare, word load/store with a scaled 5-bit offset, PC-relative
// literal load, register test and move, and conditional branches with
// an 8-bit signed halfword displacement. Encode validates every operand
// range eagerly, before emission. The PC-relative helpers reproduce the
// core's convention of referencing the next instruction address, word
// aligned for literal loads.
package thumb
