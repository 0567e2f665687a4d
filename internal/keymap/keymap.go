// Package keymap translates between the CHIP-8 hex keypad and the
// canonical 4x4 host keyboard layout it is conventionally mapped to.
// This table is informative, not core: the interpreter in
// internal/chip8 accepts raw key indices 0..15 and has no opinion about
// which physical key produces them.
package keymap

// Layout is the canonical host keyboard region a CHIP-8 hex keypad is
// mapped onto:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var Layout = [16]string{
	0x0: "X", 0x1: "1", 0x2: "2", 0x3: "3",
	0x4: "Q", 0x5: "W", 0x6: "E", 0x7: "A",
	0x8: "S", 0x9: "D", 0xA: "Z", 0xB: "C",
	0xC: "4", 0xD: "R", 0xE: "F", 0xF: "V",
}

// Position gives the hex key drawn at each cell of a 4x4 grid, cells
// numbered row by row from 0, when the keypad is laid out in its native
// order (1 2 3 C / 4 5 6 D / 7 8 9 E / A 0 B F); used by the renderer's
// on-screen overlay.
var Position = [16]uint8{
	0x0: 0x1, 0x1: 0x2, 0x2: 0x3, 0x3: 0xC,
	0x4: 0x4, 0x5: 0x5, 0x6: 0x6, 0x7: 0xD,
	0x8: 0x7, 0x9: 0x8, 0xA: 0x9, 0xB: 0xE,
	0xC: 0xA, 0xD: 0x0, 0xE: 0xB, 0xF: 0xF,
}
