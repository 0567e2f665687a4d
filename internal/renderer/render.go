// Package renderer hosts the CHIP-8 core behind an ebiten window: it
// polls physical keys into the CPU's key latch, steps the interpreter,
// and blits its framebuffer. None of this belongs to the interpreter
// itself (see spec.md §1's external-collaborator list); it is the thin
// host the core is missing on its own.
package renderer

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/kestrelcore/chip8vm/internal/beep"
	"github.com/kestrelcore/chip8vm/internal/chip8"
	"github.com/kestrelcore/chip8vm/internal/keymap"
)

// keyBindings maps each hex key index to the ebiten key that drives it,
// following the keymap.Layout host region.
var keyBindings = map[uint8]ebiten.Key{
	0x1: ebiten.Key1, 0x2: ebiten.Key2, 0x3: ebiten.Key3, 0xC: ebiten.Key4,
	0x4: ebiten.KeyQ, 0x5: ebiten.KeyW, 0x6: ebiten.KeyE, 0xD: ebiten.KeyR,
	0x7: ebiten.KeyA, 0x8: ebiten.KeyS, 0x9: ebiten.KeyD, 0xE: ebiten.KeyF,
	0xA: ebiten.KeyZ, 0x0: ebiten.KeyX, 0xB: ebiten.KeyC, 0xF: ebiten.KeyV,
}

var (
	buttonReleasedColor color.Color = MustDecodeColorFromHex("999999")
	buttonPressedColor  color.Color = MustDecodeColorFromHex("65f057")
)

// Config configures the window's pixel colors and the number of CPU
// steps run per rendered frame (the instruction-rate side of the
// decoupled 60 Hz timer cadence spec.md §5 mentions but does not
// mandate).
type Config struct {
	FgColor      color.Color
	BgColor      color.Color
	StepsPerTick int
	RomName      string
}

// Renderer drives one CPU through ebiten's game loop.
type Renderer struct {
	cpu  *chip8.CPU
	beep *beep.Beep

	conf Config

	paused     bool
	keypadMode bool
	lastST     uint8
}

// NewFromConfig binds a Renderer to an already-loaded CPU.
func NewFromConfig(cpu *chip8.CPU, conf Config) *Renderer {
	if conf.StepsPerTick <= 0 {
		conf.StepsPerTick = 1
	}
	b, err := beep.New()
	if err != nil {
		log.Printf("couldn't create the beep player, running without sound: %s\n", err.Error())
	}
	return &Renderer{
		cpu:  cpu,
		beep: b,
		conf: conf,
	}
}

func (r *Renderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		r.paused = !r.paused
		r.setWindowTitle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		r.keypadMode = !r.keypadMode
	}
	if r.beep != nil {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.Key0):
			r.beep.VolumeUp()
		case inpututil.IsKeyJustPressed(ebiten.Key9):
			r.beep.VolumeDown()
		}
	}

	for hexKey, key := range keyBindings {
		r.cpu.SetKey(hexKey, ebiten.IsKeyPressed(key))
	}

	if r.paused {
		return nil
	}

	for i := 0; i < r.conf.StepsPerTick; i++ {
		outcome := r.cpu.Step()
		if outcome != chip8.Success {
			log.Printf("chip8 halted: %s (pc=%#04x)\n", outcome, r.cpu.PC())
			r.paused = true
			r.setWindowTitle()
			break
		}
	}

	if r.beep != nil {
		st := r.cpu.ST()
		if st > 0 && r.lastST == 0 {
			r.beep.Play()
		}
		r.lastST = st
	}

	return nil
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	fb := r.cpu.Framebuffer()
	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			pixelColor := r.conf.BgColor
			if fb[y*chip8.ScreenWidth+x] == 1 {
				pixelColor = r.conf.FgColor
			}
			screen.Set(x, y, pixelColor)
		}
	}

	if !r.keypadMode {
		return
	}

	buttonsInRow := 4
	buttonSize := 4
	offsetX := (chip8.ScreenWidth - (buttonsInRow*buttonSize + buttonsInRow - 1)) >> 1
	offsetY := chip8.ScreenHeight + 1

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			pixelColor := buttonReleasedColor
			key := uint8(y<<2 | x&0xf)
			down, _ := r.cpu.GetKey(keymap.Position[key])
			if down {
				pixelColor = buttonPressedColor
			}

			posX := offsetX + x*(buttonSize+1)
			posY := offsetY + y*(buttonSize+1)

			vector.DrawFilledRect(screen,
				float32(posX), float32(posY),
				float32(buttonSize), float32(buttonSize),
				pixelColor, false,
			)
		}
	}
}

func (r *Renderer) Layout(int, int) (int, int) {
	if r.keypadMode {
		return chip8.ScreenWidth, chip8.ScreenHeight + 22
	}
	return chip8.ScreenWidth, chip8.ScreenHeight
}

// Run starts ebiten's game loop. It blocks until the window closes.
func (r *Renderer) Run(tps int) error {
	ebiten.SetTPS(tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	r.setWindowTitle()

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("run renderer: %w", err)
	}
	return nil
}

func (r *Renderer) setWindowTitle() {
	status := "RUNNING"
	if r.paused {
		status = "PAUSED"
	}
	ebiten.SetWindowTitle("chip8vm: " + r.conf.RomName + " " + status)
}

func MustDecodeColorFromHex(s string) color.Color {
	c, err := DecodeColorFromHex(s)
	if err != nil {
		log.Fatal(err.Error())
	}
	return c
}

func DecodeColorFromHex(s string) (color.Color, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode a hex string: %w", err)
	}
	if len(data) != 3 && len(data) != 4 {
		return nil, fmt.Errorf("color must be in rgb or rgba format")
	}

	c := color.RGBA{R: data[0], G: data[1], B: data[2], A: 0xff}
	if len(data) == 4 {
		c.A = data[3]
	}
	return c, nil
}
