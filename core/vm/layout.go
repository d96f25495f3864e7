package vm

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Control block field offsets, in bytes from the start of the shared region.
// These are part of the ABI: a host on the other side of the foreign-memory
// bridge depends on them not moving.
const (
	offPC           = 0
	offSection      = 4
	offGasRemaining = 8
	offGasRefund    = 16
	offStackSize    = 24
	offMemorySize   = 28
	offState        = 32
	offType         = 36
	offIsStatic     = 40
	offDepth        = 44

	offStackPtr           = 48
	offMemoryPtr          = 56
	offCodePtr            = 64
	offInputPtr           = 72
	offOutputPtr          = 80
	offReturnDataPtr      = 88
	offLogsPtr            = 96
	offWarmAddressesPtr   = 104

	offCodeSize            = 112
	offInputSize           = 116
	offOutputSize          = 120
	offReturnDataSize      = 124
	offLogsCount           = 128
	offWarmAddressesCount  = 132
	offWarmStorageCount    = 136

	offRecipient          = 144
	offSender             = 164
	offContract           = 184
	offOriginator         = 204
	offMiningBeneficiary  = 224

	offValue         = 244
	offApparentValue = 276
	offGasPrice      = 308

	offHaltReason = 340
	offReserved   = 344

	// ControlBlockSize is the fixed size of the control block header, in bytes.
	ControlBlockSize = 384

	addressSize = 20
	wordSize    = 32

	// StackCapacity is the fixed number of 32-byte slots reserved for the
	// stack plane, regardless of current stack_size.
	StackCapacity = 1024

	// MemoryCeiling is the default hard limit on memory plane growth.
	MemoryCeiling = 1 << 20 // 1 MiB

	// StorageEntrySize is the size in bytes of one storage plane entry.
	StorageEntrySize = 124
)

// ControlBlock is an accessor over a host-owned byte region: the 384-byte
// control block header followed by the stack/memory/code/input/output/
// return-data/logs/storage planes. It never copies or owns the region; every
// method reads or writes directly into buf.
//
// This mirrors the offset-constant-plus-accessor pattern used for
// byte-exact shared buffers elsewhere in the ecosystem, rather than
// overlaying a Go struct onto the bytes via unsafe.Pointer: struct layout
// and padding are compiler- and architecture-dependent, but the wire
// contract here is not.
type ControlBlock struct {
	buf []byte
}

// NewControlBlock wraps buf, which must be at least ControlBlockSize bytes.
func NewControlBlock(buf []byte) *ControlBlock {
	return &ControlBlock{buf: buf}
}

// Bytes returns the full backing region.
func (c *ControlBlock) Bytes() []byte { return c.buf }

func (c *ControlBlock) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(c.buf[off : off+4])
}

func (c *ControlBlock) setU32(off int, v uint32) {
	binary.LittleEndian.PutUint32(c.buf[off:off+4], v)
}

func (c *ControlBlock) u64(off int) uint64 {
	return binary.LittleEndian.Uint64(c.buf[off : off+8])
}

func (c *ControlBlock) setU64(off int, v uint64) {
	binary.LittleEndian.PutUint64(c.buf[off:off+8], v)
}

func (c *ControlBlock) i64(off int) int64 {
	return int64(c.u64(off))
}

func (c *ControlBlock) setI64(off int, v int64) {
	c.setU64(off, uint64(v))
}

// PC returns the program counter into the code plane.
func (c *ControlBlock) PC() uint32       { return c.u32(offPC) }
func (c *ControlBlock) SetPC(v uint32)   { c.setU32(offPC, v) }

func (c *ControlBlock) Section() uint32     { return c.u32(offSection) }
func (c *ControlBlock) SetSection(v uint32) { c.setU32(offSection, v) }

// GasRemaining is signed; it must never be observed negative outside a
// halting transition.
func (c *ControlBlock) GasRemaining() int64     { return c.i64(offGasRemaining) }
func (c *ControlBlock) SetGasRemaining(v int64) { c.setI64(offGasRemaining, v) }

func (c *ControlBlock) GasRefund() int64     { return c.i64(offGasRefund) }
func (c *ControlBlock) SetGasRefund(v int64) { c.setI64(offGasRefund, v) }
func (c *ControlBlock) AddGasRefund(delta int64) {
	c.setI64(offGasRefund, c.GasRefund()+delta)
}

func (c *ControlBlock) StackSize() uint32     { return c.u32(offStackSize) }
func (c *ControlBlock) SetStackSize(v uint32) { c.setU32(offStackSize, v) }

func (c *ControlBlock) MemorySize() uint32     { return c.u32(offMemorySize) }
func (c *ControlBlock) SetMemorySize(v uint32) { c.setU32(offMemorySize, v) }

func (c *ControlBlock) State() State     { return State(c.u32(offState)) }
func (c *ControlBlock) SetState(v State) { c.setU32(offState, uint32(v)) }

func (c *ControlBlock) FrameType() uint32     { return c.u32(offType) }
func (c *ControlBlock) SetFrameType(v uint32) { c.setU32(offType, v) }

func (c *ControlBlock) IsStatic() bool {
	return c.u32(offIsStatic) != 0
}
func (c *ControlBlock) SetIsStatic(v bool) {
	if v {
		c.setU32(offIsStatic, 1)
	} else {
		c.setU32(offIsStatic, 0)
	}
}

func (c *ControlBlock) Depth() uint32     { return c.u32(offDepth) }
func (c *ControlBlock) SetDepth(v uint32) { c.setU32(offDepth, v) }

func (c *ControlBlock) StackPtr() uint64         { return c.u64(offStackPtr) }
func (c *ControlBlock) MemoryPtr() uint64        { return c.u64(offMemoryPtr) }
func (c *ControlBlock) CodePtr() uint64          { return c.u64(offCodePtr) }
func (c *ControlBlock) InputPtr() uint64         { return c.u64(offInputPtr) }
func (c *ControlBlock) OutputPtr() uint64        { return c.u64(offOutputPtr) }
func (c *ControlBlock) ReturnDataPtr() uint64    { return c.u64(offReturnDataPtr) }
func (c *ControlBlock) LogsPtr() uint64          { return c.u64(offLogsPtr) }
func (c *ControlBlock) WarmAddressesPtr() uint64 { return c.u64(offWarmAddressesPtr) }

func (c *ControlBlock) SetStackPtr(v uint64)         { c.setU64(offStackPtr, v) }
func (c *ControlBlock) SetMemoryPtr(v uint64)        { c.setU64(offMemoryPtr, v) }
func (c *ControlBlock) SetCodePtr(v uint64)          { c.setU64(offCodePtr, v) }
func (c *ControlBlock) SetInputPtr(v uint64)         { c.setU64(offInputPtr, v) }
func (c *ControlBlock) SetOutputPtr(v uint64)        { c.setU64(offOutputPtr, v) }
func (c *ControlBlock) SetReturnDataPtr(v uint64)    { c.setU64(offReturnDataPtr, v) }
func (c *ControlBlock) SetLogsPtr(v uint64)          { c.setU64(offLogsPtr, v) }
func (c *ControlBlock) SetWarmAddressesPtr(v uint64) { c.setU64(offWarmAddressesPtr, v) }

func (c *ControlBlock) CodeSize() uint32           { return c.u32(offCodeSize) }
func (c *ControlBlock) SetCodeSize(v uint32)       { c.setU32(offCodeSize, v) }
func (c *ControlBlock) InputSize() uint32          { return c.u32(offInputSize) }
func (c *ControlBlock) SetInputSize(v uint32)      { c.setU32(offInputSize, v) }
func (c *ControlBlock) OutputSize() uint32         { return c.u32(offOutputSize) }
func (c *ControlBlock) SetOutputSize(v uint32)     { c.setU32(offOutputSize, v) }
func (c *ControlBlock) ReturnDataSize() uint32     { return c.u32(offReturnDataSize) }
func (c *ControlBlock) SetReturnDataSize(v uint32) { c.setU32(offReturnDataSize, v) }
func (c *ControlBlock) LogsCount() uint32          { return c.u32(offLogsCount) }
func (c *ControlBlock) SetLogsCount(v uint32)      { c.setU32(offLogsCount, v) }
func (c *ControlBlock) WarmAddressesCount() uint32 { return c.u32(offWarmAddressesCount) }
func (c *ControlBlock) WarmStorageCount() uint32   { return c.u32(offWarmStorageCount) }
func (c *ControlBlock) SetWarmStorageCount(v uint32) {
	c.setU32(offWarmStorageCount, v)
}

func (c *ControlBlock) address(off int) common.Address {
	return common.BytesToAddress(c.buf[off : off+addressSize])
}
func (c *ControlBlock) setAddress(off int, a common.Address) {
	copy(c.buf[off:off+addressSize], a.Bytes())
}

func (c *ControlBlock) Recipient() common.Address         { return c.address(offRecipient) }
func (c *ControlBlock) SetRecipient(a common.Address)     { c.setAddress(offRecipient, a) }
func (c *ControlBlock) Sender() common.Address            { return c.address(offSender) }
func (c *ControlBlock) SetSender(a common.Address)        { c.setAddress(offSender, a) }
func (c *ControlBlock) Contract() common.Address          { return c.address(offContract) }
func (c *ControlBlock) SetContract(a common.Address)      { c.setAddress(offContract, a) }
func (c *ControlBlock) Originator() common.Address        { return c.address(offOriginator) }
func (c *ControlBlock) SetOriginator(a common.Address)    { c.setAddress(offOriginator, a) }
func (c *ControlBlock) MiningBeneficiary() common.Address { return c.address(offMiningBeneficiary) }
func (c *ControlBlock) SetMiningBeneficiary(a common.Address) {
	c.setAddress(offMiningBeneficiary, a)
}

func (c *ControlBlock) word(off int) common.Hash {
	return common.BytesToHash(c.buf[off : off+wordSize])
}
func (c *ControlBlock) setWord(off int, h common.Hash) {
	copy(c.buf[off:off+wordSize], h.Bytes())
}

func (c *ControlBlock) Value() common.Hash             { return c.word(offValue) }
func (c *ControlBlock) SetValue(h common.Hash)         { c.setWord(offValue, h) }
func (c *ControlBlock) ApparentValue() common.Hash     { return c.word(offApparentValue) }
func (c *ControlBlock) SetApparentValue(h common.Hash) { c.setWord(offApparentValue, h) }
func (c *ControlBlock) GasPrice() common.Hash          { return c.word(offGasPrice) }
func (c *ControlBlock) SetGasPrice(h common.Hash)      { c.setWord(offGasPrice, h) }

func (c *ControlBlock) HaltReason() HaltReason     { return HaltReason(c.u32(offHaltReason)) }
func (c *ControlBlock) SetHaltReason(r HaltReason) { c.setU32(offHaltReason, uint32(r)) }

// Stack returns the byte slice backing the stack plane, sized to its full
// reserved capacity (StackCapacity * 32 bytes), not just stack_size entries.
func (c *ControlBlock) Stack() []byte {
	start := c.StackPtr()
	return c.buf[start : start+uint64(StackCapacity*wordSize)]
}

// Memory returns the byte slice backing the memory plane, sized to the
// region reserved by the host (which may exceed the current memory_size
// high-water mark).
func (c *ControlBlock) Memory(reservedSize uint64) []byte {
	start := c.MemoryPtr()
	return c.buf[start : start+reservedSize]
}

// Code returns the byte slice backing the immutable code plane.
func (c *ControlBlock) Code() []byte {
	start := c.CodePtr()
	size := uint64(c.CodeSize())
	return c.buf[start : start+size]
}

// Input returns the byte slice backing the read-only call-data plane.
func (c *ControlBlock) Input() []byte {
	start := c.InputPtr()
	size := uint64(c.InputSize())
	return c.buf[start : start+size]
}

// Output returns the byte slice backing the output plane, sized to the
// region reserved by the host.
func (c *ControlBlock) Output(reservedSize uint64) []byte {
	start := c.OutputPtr()
	return c.buf[start : start+reservedSize]
}

// Storage returns the byte slice backing the storage plane, sized to
// maxStorageSlots entries.
func (c *ControlBlock) Storage(maxStorageSlots uint32) []byte {
	start := c.WarmAddressesPtr() // warm_addresses_ptr locates the storage plane; see DESIGN.md
	return c.buf[start : start+uint64(maxStorageSlots)*uint64(StorageEntrySize)]
}

// Logs returns the byte slice backing the logs plane, sized to maxLogs
// entries of logEntrySize bytes each.
func (c *ControlBlock) Logs(maxLogs uint32) []byte {
	start := c.LogsPtr()
	return c.buf[start : start+uint64(maxLogs)*uint64(logEntrySize)]
}
