// Package chip8 implements the core CHIP-8 interpreter: the
// fetch-decode-execute loop, the 35-opcode instruction set, the
// register/memory/stack model, the keyed input latch, the two
// decrementing timers, and the monochrome XOR-blit framebuffer. The
// package is a pure, synchronous state machine with no I/O beyond
// reading ROM bytes; everything that drives a window, plays audio, or
// reads physical keys lives outside it.
package chip8

import (
	v2 "math/rand/v2"
	"time"
)

const (
	// RamSizeBytes is the total addressable memory.
	RamSizeBytes = 0x1000 // 4096

	// EntryPoint is where a loaded ROM begins and where PC starts.
	//
	// see more http://devernay.free.fr/hacks/chip8/C8TECH10.HTM#2.1
	EntryPoint = 0x200 // 512

	// RomMaxSizeBytes is the largest ROM that fits between EntryPoint
	// and the end of RAM.
	RomMaxSizeBytes = RamSizeBytes - EntryPoint

	// ScreenWidth and ScreenHeight describe the original monochrome
	// 64x32-pixel display.
	ScreenWidth  = 64
	ScreenHeight = 32
	ScreenSize   = ScreenWidth * ScreenHeight

	// KeyPadSize is the number of keys on the hex keypad.
	//
	// http://devernay.free.fr/hacks/chip8/C8TECH10.HTM#2.3
	KeyPadSize = 0x10

	// DefaultTPS is a commonly used renderer tick rate a host may pick
	// to approximate the original 60 Hz timer cadence; the core itself
	// decrements timers once per Step regardless of tick rate (see
	// spec.md §5).
	DefaultTPS = 60
)

// State is the CPU step driver's persistent state.
type State int

const (
	StateRunning State = iota
	StateHalted
)

func (s State) String() string {
	if s == StateRunning {
		return "RUNNING"
	}
	return "HALTED"
}

// CPU is the complete interpreter state: memory, registers, the index
// and program counter, the call stack, the two timers, the key latch,
// the framebuffer, and the selected quirk set. It is exclusively owned
// by one logical emulator for the lifetime of the process; nothing in
// this package is safe for concurrent use without external locking.
type CPU struct {
	memory [RamSizeBytes]byte

	v  [16]uint8
	ir uint16
	pc uint16

	stack Stack

	dt uint8
	st uint8

	keys [KeyPadSize]bool

	framebuffer [ScreenSize]uint8

	quirks Quirks
	rng    *v2.Rand

	state       State
	lastOutcome Outcome

	// Trace, when true, makes Step populate LastMnemonic with the
	// disassembly of the instruction it is about to execute.
	Trace bool
	// LastMnemonic holds the disassembled form of the most recently
	// fetched instruction when Trace is enabled.
	LastMnemonic string
}

// New creates a CPU with the given quirk set, zeroed registers and
// memory, the fontset pre-loaded at FontBase, PC at EntryPoint, and the
// PRNG seeded once from wall-clock time.
func New(quirks Quirks) *CPU {
	c := &CPU{
		pc:    EntryPoint,
		state: StateRunning,
	}
	c.quirks = quirks
	copy(c.memory[FontBase:], font[:])
	c.seedRNG()
	return c
}

func (c *CPU) seedRNG() {
	now := uint64(time.Now().UnixNano())
	c.rng = v2.New(v2.NewPCG(now, now>>32|1))
}

// Reset reinitializes the CPU in place, as if New had just been called
// with the given quirks. This is the only way back to StateRunning from
// StateHalted.
func (c *CPU) Reset(quirks Quirks) {
	*c = *New(quirks)
}

// LoadRom copies rom's bytes into memory starting at EntryPoint. It
// fails with RomExceedsMaxMem without mutating memory if the ROM does
// not fit.
func (c *CPU) LoadRom(rom Rom) Outcome {
	if len(rom.Data) > RomMaxSizeBytes {
		return RomExceedsMaxMem
	}
	copy(c.memory[EntryPoint:], rom.Data)
	return Success
}

// Status reports whether the step driver is Running or Halted.
func (c *CPU) Status() State {
	return c.state
}

// LastOutcome reports the outcome of the most recent Step call.
func (c *CPU) LastOutcome() Outcome {
	return c.lastOutcome
}

// Step fetches the instruction at PC, advances PC by 2, decodes and
// executes it, and decrements the delay and sound timers once each if
// they are nonzero. If the CPU is Halted, Step is a no-op that
// re-reports the last terminal outcome.
func (c *CPU) Step() Outcome {
	if c.state == StateHalted {
		return c.lastOutcome
	}

	if c.pc > RamSizeBytes-2 {
		return c.halt(MemOutOfBounds)
	}

	word := uint16(c.memory[c.pc])<<8 | uint16(c.memory[c.pc+1])
	opcode := Opcode(word)

	if c.Trace {
		c.LastMnemonic = Disassemble(opcode)
	}

	c.pc += 2

	outcome := c.execute(opcode)

	if c.dt > 0 {
		c.dt--
	}
	if c.st > 0 {
		c.st--
	}

	c.lastOutcome = outcome
	if outcome != Success {
		c.state = StateHalted
	}
	return outcome
}

func (c *CPU) halt(outcome Outcome) Outcome {
	c.lastOutcome = outcome
	c.state = StateHalted
	return outcome
}

// SetKey updates the latched state of one hex keypad key. It fails with
// IndexOutOfRange and leaves state unchanged for index >= KeyPadSize.
func (c *CPU) SetKey(index uint8, down bool) Outcome {
	if index >= KeyPadSize {
		return IndexOutOfRange
	}
	c.keys[index] = down
	return Success
}

// GetKey reports the latched state of one hex keypad key. It fails with
// IndexOutOfRange for index >= KeyPadSize.
func (c *CPU) GetKey(index uint8) (bool, Outcome) {
	if index >= KeyPadSize {
		return false, IndexOutOfRange
	}
	return c.keys[index], Success
}

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// IR returns the index register.
func (c *CPU) IR() uint16 { return c.ir }

// SP returns the current stack depth.
func (c *CPU) SP() uint8 { return c.stack.Len() }

// DT returns the delay timer.
func (c *CPU) DT() uint8 { return c.dt }

// ST returns the sound timer.
func (c *CPU) ST() uint8 { return c.st }

// V returns the value of general register i (0..15).
func (c *CPU) V(i uint8) uint8 { return c.v[i&0xF] }

// StackAt returns the stack entry at index i (0..15), for inspectors.
func (c *CPU) StackAt(i int) uint16 { return c.stack.At(i) }

// Quirks returns the currently active quirk set.
func (c *CPU) Quirks() Quirks { return c.quirks }

// SetQuirks turns on the quirk behaviors named by flags, leaving others
// untouched.
func (c *CPU) SetQuirks(flags QuirkFlags) { c.quirks.set(flags, true) }

// ClearQuirks turns off the quirk behaviors named by flags, leaving
// others untouched.
func (c *CPU) ClearQuirks(flags QuirkFlags) { c.quirks.set(flags, false) }

// Framebuffer returns the 64x32 monochrome pixel grid, row-major, each
// cell 0 or 1.
func (c *CPU) Framebuffer() [ScreenSize]uint8 { return c.framebuffer }

// PixelAt reports the pixel at (x, y), with x masked to 6 bits and y
// masked to 5 bits.
func (c *CPU) PixelAt(x, y int) uint8 {
	return c.framebuffer[(y&(ScreenHeight-1))*ScreenWidth+(x&(ScreenWidth-1))]
}

// MemoryAt returns the byte at the given 16-bit address, masked to the
// 4 KiB address space. Intended for inspectors and tests, not opcode
// execution (which bounds-checks explicitly; see execute.go).
func (c *CPU) MemoryAt(addr uint16) byte {
	return c.memory[addr&0x0FFF]
}
