package vm

// Stack is a thin view over the control block's stack plane: a reserved
// region of StackCapacity * 32 bytes, with the live portion tracked by the
// control block's stack_size field. Unlike a *big.Int-backed stack, it never
// allocates on push/pop — every operation reads or writes the shared buffer
// in place, which is what lets the interpreter run with zero marshalling
// per opcode.
type Stack struct {
	cb   *ControlBlock
	data []byte // full StackCapacity*32 reserved region
}

func newStack(cb *ControlBlock) *Stack {
	return &Stack{cb: cb, data: cb.Stack()}
}

// Len returns the number of items on the stack.
func (s *Stack) Len() int { return int(s.cb.StackSize()) }

func (s *Stack) slot(i int) []byte {
	return s.data[i*wordSize : i*wordSize+wordSize]
}

// Push appends word to the top of the stack.
func (s *Stack) Push(word []byte) error {
	n := s.Len()
	if n >= StackCapacity {
		return ErrStackOverflow
	}
	copy(s.slot(n), word)
	s.cb.SetStackSize(uint32(n + 1))
	return nil
}

// Pop removes and returns the top word. The returned slice aliases the
// stack's backing storage; callers must copy it out before the next Push
// overwrites that slot.
func (s *Stack) Pop() ([]byte, error) {
	n := s.Len()
	if n == 0 {
		return nil, ErrStackUnderflow
	}
	n--
	s.cb.SetStackSize(uint32(n))
	return s.slot(n), nil
}

// Peek returns a reference to the top word without popping it.
func (s *Stack) Peek() ([]byte, error) {
	return s.Back(0)
}

// Back returns the n-th word from the top (0-indexed: 0 = top) without
// popping it.
func (s *Stack) Back(n int) ([]byte, error) {
	size := s.Len()
	if n < 0 || n >= size {
		return nil, ErrStackUnderflow
	}
	return s.slot(size - 1 - n), nil
}

// Dup duplicates the n-th word from the top (1 = top, matching DUPn's
// 1-indexed operand) and pushes the copy.
func (s *Stack) Dup(n int) error {
	size := s.Len()
	if n < 1 || n > size {
		return ErrStackUnderflow
	}
	if size >= StackCapacity {
		return ErrStackOverflow
	}
	var tmp [wordSize]byte
	copy(tmp[:], s.slot(size-n))
	return s.Push(tmp[:])
}

// Swap exchanges the top word with the (n+1)-th word from the top (n = 1..16,
// matching SWAPn's 1-indexed operand).
func (s *Stack) Swap(n int) error {
	size := s.Len()
	if n < 1 || n >= size {
		return ErrStackUnderflow
	}
	top := s.slot(size - 1)
	other := s.slot(size - 1 - n)
	var tmp [wordSize]byte
	copy(tmp[:], top)
	copy(top, other)
	copy(other, tmp[:])
	return nil
}
