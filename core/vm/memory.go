package vm

// Memory is a view over the control block's memory plane: a byte-addressable
// region, word-aligned on growth, backed by a host-reserved slice that may
// be larger than the current high-water mark (memory_size). Growth beyond
// ceiling halts the frame with ErrMemoryLimitExceeded rather than growing
// the backing slice, since the slice is host-owned and fixed-size.
type Memory struct {
	cb      *ControlBlock
	store   []byte // host-reserved region, length >= ceiling
	ceiling uint64
}

func newMemory(cb *ControlBlock, reserved []byte, ceiling uint64) *Memory {
	return &Memory{cb: cb, store: reserved, ceiling: ceiling}
}

// Len returns the current memory_size in bytes.
func (m *Memory) Len() uint64 { return uint64(m.cb.MemorySize()) }

// resize grows memory_size to cover [0, size) rounded up to the next 32-byte
// word, zero-filling the newly exposed bytes. A no-op if memory is already
// large enough. Returns ErrMemoryLimitExceeded if the requested size would
// exceed the configured ceiling or the host-reserved backing region.
func (m *Memory) resize(size uint64) error {
	if size <= m.Len() {
		return nil
	}
	newSize := ((size + wordSize - 1) / wordSize) * wordSize
	if newSize > m.ceiling || newSize > uint64(len(m.store)) {
		return ErrMemoryLimitExceeded
	}
	old := m.Len()
	for i := old; i < newSize; i++ {
		m.store[i] = 0
	}
	m.cb.SetMemorySize(uint32(newSize))
	return nil
}

// Set copies value into memory at [offset, offset+len(value)), growing
// memory first as needed.
func (m *Memory) Set(offset uint64, value []byte) error {
	if len(value) == 0 {
		return nil
	}
	if err := m.resize(offset + uint64(len(value))); err != nil {
		return err
	}
	copy(m.store[offset:offset+uint64(len(value))], value)
	return nil
}

// SetByte writes the single low byte of value at offset, growing memory
// first (MSTORE8 semantics).
func (m *Memory) SetByte(offset uint64, value byte) error {
	if err := m.resize(offset + 1); err != nil {
		return err
	}
	m.store[offset] = value
	return nil
}

// Get returns a copy of the memory contents at [offset, offset+size),
// growing memory first as needed.
func (m *Memory) Get(offset, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if err := m.resize(offset + size); err != nil {
		return nil, err
	}
	out := make([]byte, size)
	copy(out, m.store[offset:offset+size])
	return out, nil
}

// GetPtr returns a direct reference into memory at [offset, offset+size),
// growing memory first as needed. The caller must not retain it past the
// next mutation.
func (m *Memory) GetPtr(offset, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if err := m.resize(offset + size); err != nil {
		return nil, err
	}
	return m.store[offset : offset+size], nil
}

// Data returns the full live prefix of the backing slice, [0, memory_size).
func (m *Memory) Data() []byte {
	return m.store[:m.Len()]
}
