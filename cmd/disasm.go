package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelcore/chip8vm/internal/chip8"
)

var disasmFromStdin bool

// disasmCmd prints the mnemonic form of every instruction in a ROM
// without executing it, reusing the same Disassemble function Step
// uses for its optional trace output.
var disasmCmd = &cobra.Command{
	Use:   "disasm [path/to/rom]",
	Short: "disassemble a ROM",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDisasm,
}

func init() {
	disasmCmd.Flags().BoolVar(&disasmFromStdin, "stdin", false, "read the rom from stdin")
}

func runDisasm(cmd *cobra.Command, args []string) error {
	var rom chip8.Rom
	var err error

	switch {
	case disasmFromStdin || len(args) == 0:
		rom, err = chip8.NewRomFromReader("stdin", os.Stdin)
	default:
		rom, err = chip8.NewRomFromFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("load rom: %w", err)
	}

	for i := 0; i+1 < len(rom.Data); i += 2 {
		word := uint16(rom.Data[i])<<8 | uint16(rom.Data[i+1])
		addr := chip8.EntryPoint + i
		fmt.Printf("%#04x  %04x  %s\n", addr, word, chip8.Disassemble(chip8.Opcode(word)))
	}
	return nil
}
