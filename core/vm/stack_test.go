package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func wordBytes(v uint64) []byte {
	w := wordFromUint64(v)
	return w[:]
}

func newTestStack() *Stack {
	f := newTestFrame(nil, 0, false)
	return newStack(f.cb)
}

func TestStackPushPopOrder(t *testing.T) {
	s := newTestStack()
	require.NoError(t, s.Push(wordBytes(1)))
	require.NoError(t, s.Push(wordBytes(2)))
	require.NoError(t, s.Push(wordBytes(3)))
	require.Equal(t, 3, s.Len())

	top, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(3), [32]byte(top))

	top, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(2), [32]byte(top))

	require.Equal(t, 1, s.Len())
}

func TestStackPopUnderflow(t *testing.T) {
	s := newTestStack()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrStackUnderflow)
}

func TestStackOverflow(t *testing.T) {
	s := newTestStack()
	for i := 0; i < StackCapacity; i++ {
		require.NoError(t, s.Push(wordBytes(uint64(i))))
	}
	require.ErrorIs(t, s.Push(wordBytes(0)), ErrStackOverflow)
}

func TestStackDupIsOneIndexed(t *testing.T) {
	s := newTestStack()
	require.NoError(t, s.Push(wordBytes(10)))
	require.NoError(t, s.Push(wordBytes(20)))

	// DUP1 duplicates the top (20).
	require.NoError(t, s.Dup(1))
	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(20), [32]byte(top))

	// DUP3 now reaches the bottom-most 10, three items down from the new top.
	require.NoError(t, s.Dup(3))
	top, err = s.Peek()
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(10), [32]byte(top))
}

func TestStackSwapIsOneIndexed(t *testing.T) {
	s := newTestStack()
	require.NoError(t, s.Push(wordBytes(1)))
	require.NoError(t, s.Push(wordBytes(2)))

	// SWAP1 exchanges top with the item directly below it.
	require.NoError(t, s.Swap(1))
	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(1), [32]byte(top))
	second, err := s.Back(1)
	require.NoError(t, err)
	require.Equal(t, wordFromUint64(2), [32]byte(second))
}

func TestStackBackUnderflow(t *testing.T) {
	s := newTestStack()
	require.NoError(t, s.Push(wordBytes(1)))
	_, err := s.Back(1)
	require.ErrorIs(t, err, ErrStackUnderflow)
}
