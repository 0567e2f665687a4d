package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisassemble_KnownOpcodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		word     uint16
		mnemonic string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1ABC, "JP   0xABC"},
		{0x2ABC, "CALL 0xABC"},
		{0x3A11, "SE   VA, 0x11"},
		{0x6A11, "LD   VA, 0x11"},
		{0x8AB4, "ADD  VA, VB"},
		{0xA123, "LD   I, 0x123"},
		{0xDAB4, "DRW  VA, VB, 0x4"},
		{0xFA1E, "ADD  I, VA"},
		{0xFA0A, "LD   VA, K"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.mnemonic, Disassemble(Opcode(tc.word)), "word %04X", tc.word)
	}
}

func TestDisassemble_UnknownSubOpcodeIsMarked(t *testing.T) {
	t.Parallel()

	require.Contains(t, Disassemble(Opcode(0x8009)), "???")
	require.Contains(t, Disassemble(Opcode(0xF099)), "???")
}
