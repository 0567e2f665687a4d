package chip8

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Rom is a named byte stream ready to be loaded into memory at
// EntryPoint.
type Rom struct {
	Name string
	Data []byte
}

// RomError wraps a ROM-loading failure with its stable Outcome code, so
// callers that only want a log line can call Error() and callers that
// need to branch on the failure kind can errors.As into a *RomError.
type RomError struct {
	Outcome Outcome
	Path    string
	Err     error
}

func (e *RomError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Outcome, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Outcome, e.Path, e.Err)
}

func (e *RomError) Unwrap() error { return e.Err }

// NewRomFromBytes wraps raw bytes as a named ROM, enforcing the
// RomMaxSizeBytes limit.
func NewRomFromBytes(name string, data []byte) (Rom, error) {
	if len(data) > RomMaxSizeBytes {
		return Rom{}, &RomError{
			Outcome: RomExceedsMaxMem,
			Path:    name,
			Err: fmt.Errorf("rom is too large: actual size is %d bytes, max size is %d bytes",
				len(data), RomMaxSizeBytes),
		}
	}
	return Rom{Name: name, Data: data}, nil
}

// NewRomFromReader reads an entire ROM image from r (e.g. stdin) and
// names it name.
func NewRomFromReader(name string, r io.Reader) (Rom, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Rom{}, &RomError{Outcome: RomReadFailed, Path: name, Err: err}
	}
	return NewRomFromBytes(name, data)
}

// NewRomFromFile loads a ROM from disk, distinguishing a missing file
// (RomNotFound) from other open failures (RomOpenFailed), read failures
// (RomReadFailed), and an oversized file (RomExceedsMaxMem).
func NewRomFromFile(romPath string) (Rom, error) {
	f, err := os.Open(romPath)
	if err != nil {
		outcome := RomOpenFailed
		if errors.Is(err, os.ErrNotExist) {
			outcome = RomNotFound
		}
		return Rom{}, &RomError{Outcome: outcome, Path: romPath, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Rom{}, &RomError{Outcome: RomReadFailed, Path: romPath, Err: err}
	}

	rom, err := NewRomFromBytes(filepath.Base(romPath), data)
	if err != nil {
		var romErr *RomError
		if errors.As(err, &romErr) {
			romErr.Path = romPath
		}
		return Rom{}, err
	}
	return rom, nil
}
