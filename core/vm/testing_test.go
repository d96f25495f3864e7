package vm

// testFrame lays out a minimal shared region for one message frame: a
// control block followed by stack/memory/code/input/output/logs/storage
// planes, sized generously for the scenarios in interpreter_test.go. Mirrors the host's job per spec §3.7: build the
// region, populate pointers and sizes, then hand it to Execute.
type testFrame struct {
	buf []byte
	cb  *ControlBlock
}

func newTestFrame(code []byte, gasRemaining int64, isStatic bool) *testFrame {
	return newTestFrameWithInput(code, nil, gasRemaining, isStatic)
}

func newTestFrameWithInput(code, input []byte, gasRemaining int64, isStatic bool) *testFrame {
	const (
		memCap     = 4096
		maxStorage = 16
		maxLogs    = 16
	)
	stackBytes := StackCapacity * wordSize
	codeBytes := len(code)
	inputBytes := len(input)
	outputBytes := 4096
	logsBytes := maxLogs * logEntrySize
	storageBytes := maxStorage * StorageEntrySize

	total := ControlBlockSize + stackBytes + memCap + codeBytes + inputBytes + outputBytes + logsBytes + storageBytes
	buf := make([]byte, total)
	cb := NewControlBlock(buf)

	off := uint64(ControlBlockSize)
	cb.SetStackPtr(off)
	off += uint64(stackBytes)
	cb.SetMemoryPtr(off)
	off += uint64(memCap)
	cb.SetCodePtr(off)
	copy(buf[off:off+uint64(codeBytes)], code)
	cb.SetCodeSize(uint32(codeBytes))
	off += uint64(codeBytes)
	cb.SetInputPtr(off)
	copy(buf[off:off+uint64(inputBytes)], input)
	cb.SetInputSize(uint32(inputBytes))
	off += uint64(inputBytes)
	cb.SetOutputPtr(off)
	off += uint64(outputBytes)
	cb.SetLogsPtr(off)
	off += uint64(logsBytes)
	cb.SetWarmAddressesPtr(off) // storage plane, see ControlBlock.Storage
	off += uint64(storageBytes)

	cb.SetGasRemaining(gasRemaining)
	cb.SetIsStatic(isStatic)
	cb.SetContract(cb.Recipient()) // zero address; SLOAD/SSTORE key off this

	return &testFrame{buf: buf, cb: cb}
}

func (f *testFrame) config() Config {
	return Config{
		UnassignedOpcodePolicy: PolicyHaltInvalid,
		MemoryCeiling:          4096,
		MaxStorageSlots:        16,
		MaxLogs:                16,
	}
}

func wordFromUint64(v uint64) [32]byte {
	var w [32]byte
	writeU64Low(v, w[:])
	return w
}
