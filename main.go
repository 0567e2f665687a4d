// Command chip8vm runs the CHIP-8 interpreter in internal/chip8 behind
// an ebiten window, or disassembles a ROM without running it.
package main

import "github.com/kestrelcore/chip8vm/cmd"

func main() {
	cmd.Execute()
}
