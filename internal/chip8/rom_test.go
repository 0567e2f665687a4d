package chip8

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRomFromBytes_TooLarge(t *testing.T) {
	t.Parallel()

	data := make([]byte, RomMaxSizeBytes+1)
	_, err := NewRomFromBytes("big.ch8", data)
	require.Error(t, err)

	var romErr *RomError
	require.True(t, errors.As(err, &romErr))
	require.Equal(t, RomExceedsMaxMem, romErr.Outcome)
}

func TestNewRomFromBytes_Fits(t *testing.T) {
	t.Parallel()

	data := []byte{0x00, 0xE0}
	rom, err := NewRomFromBytes("small.ch8", data)
	require.NoError(t, err)
	require.Equal(t, "small.ch8", rom.Name)
	require.Equal(t, data, rom.Data)
}

func TestNewRomFromReader(t *testing.T) {
	t.Parallel()

	rom, err := NewRomFromReader("stdin", bytes.NewReader([]byte{0x12, 0x34}))
	require.NoError(t, err)
	require.Equal(t, []byte{0x12, 0x34}, rom.Data)
}

func TestNewRomFromFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewRomFromFile(filepath.Join(t.TempDir(), "missing.ch8"))
	require.Error(t, err)

	var romErr *RomError
	require.True(t, errors.As(err, &romErr))
	require.Equal(t, RomNotFound, romErr.Outcome)
}

func TestNewRomFromFile_Loads(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pong.ch8")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xE0, 0x12, 0x00}, 0o644))

	rom, err := NewRomFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "pong.ch8", rom.Name)
	require.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, rom.Data)
}

func TestNewRomFromFile_TooLarge(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "huge.ch8")
	require.NoError(t, os.WriteFile(path, make([]byte, RomMaxSizeBytes+1), 0o644))

	_, err := NewRomFromFile(path)
	require.Error(t, err)

	var romErr *RomError
	require.True(t, errors.As(err, &romErr))
	require.Equal(t, RomExceedsMaxMem, romErr.Outcome)
	require.Equal(t, path, romErr.Path)
}
