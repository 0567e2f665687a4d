package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_PushPop(t *testing.T) {
	t.Parallel()

	var s Stack
	require.Equal(t, uint8(0), s.Len())

	require.Equal(t, Success, s.Push(0x200))
	require.Equal(t, Success, s.Push(0x204))
	require.Equal(t, uint8(2), s.Len())

	addr, outcome := s.Pop()
	require.Equal(t, Success, outcome)
	require.Equal(t, uint16(0x204), addr)

	addr, outcome = s.Pop()
	require.Equal(t, Success, outcome)
	require.Equal(t, uint16(0x200), addr)
	require.Equal(t, uint8(0), s.Len())
}

func TestStack_PopEmpty(t *testing.T) {
	t.Parallel()

	var s Stack
	_, outcome := s.Pop()
	require.Equal(t, StackEmpty, outcome)
}

func TestStack_PushOverflow(t *testing.T) {
	t.Parallel()

	var s Stack
	for i := 0; i < StackMaxSize; i++ {
		require.Equal(t, Success, s.Push(uint16(i)))
	}
	require.Equal(t, uint8(StackMaxSize), s.Len())
	require.Equal(t, StackOverflow, s.Push(0xFFFF))
	require.Equal(t, uint8(StackMaxSize), s.Len(), "overflowing push must not mutate the stack")
}
