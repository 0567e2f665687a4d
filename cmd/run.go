package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kestrelcore/chip8vm/internal/chip8"
	"github.com/kestrelcore/chip8vm/internal/renderer"
)

var (
	fgColorHex      string
	bgColorHex      string
	tps             int
	stepsPerTick    int
	quirkShiftsVY   bool
	quirkBNNNUsesVX bool
	quirkFXAutoincI bool
)

// runCmd runs a ROM in an ebiten window until the window closes. When
// the interpreter halts, the renderer pauses and the window stays open.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  runChip8vm,
}

func init() {
	runCmd.Flags().StringVar(&fgColorHex, "fg", "FFFFFFFF", "rgba foreground color in hex")
	runCmd.Flags().StringVar(&bgColorHex, "bg", "000000FF", "rgba background color in hex")
	runCmd.Flags().IntVar(&tps, "tps", chip8.DefaultTPS, "renderer ticks per second")
	runCmd.Flags().IntVar(&stepsPerTick, "steps-per-tick", 10, "CPU steps executed per rendered tick")
	runCmd.Flags().BoolVar(&quirkShiftsVY, "quirk-shift-vy", false, "8XY6/8XYE read VY as the shift source (COSMAC-VIP behavior)")
	runCmd.Flags().BoolVar(&quirkBNNNUsesVX, "quirk-bnnn-vx", false, "BNNN jumps to NNN+VX instead of NNN+V0")
	runCmd.Flags().BoolVar(&quirkFXAutoincI, "quirk-fx-autoinc-i", false, "FX55/FX65 auto-increment I by X+1")
}

func runChip8vm(cmd *cobra.Command, args []string) error {
	romPath := args[0]

	fgColor, err := renderer.DecodeColorFromHex(fgColorHex)
	if err != nil {
		return fmt.Errorf("decode fg color %q: %w", fgColorHex, err)
	}
	bgColor, err := renderer.DecodeColorFromHex(bgColorHex)
	if err != nil {
		return fmt.Errorf("decode bg color %q: %w", bgColorHex, err)
	}

	rom, err := chip8.NewRomFromFile(romPath)
	if err != nil {
		return fmt.Errorf("load rom: %w", err)
	}

	quirks := chip8.Quirks{
		ShiftsUseVY: quirkShiftsVY,
		BNNNUsesVX:  quirkBNNNUsesVX,
		FXAutoincI:  quirkFXAutoincI,
	}

	cpu := chip8.New(quirks)
	if outcome := cpu.LoadRom(rom); outcome != chip8.Success {
		fmt.Fprintf(os.Stderr, "couldn't load rom: %s\n", outcome)
		os.Exit(1)
	}

	r := renderer.NewFromConfig(cpu, renderer.Config{
		FgColor:      fgColor,
		BgColor:      bgColor,
		StepsPerTick: stepsPerTick,
		RomName:      rom.Name,
	})

	return r.Run(tps)
}
