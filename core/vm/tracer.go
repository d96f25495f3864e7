package vm

// OperationResult is the 16-byte record passed to a tracer's post-execution
// hook: (gas_cost int64, halt_reason uint32, pc_increment uint32).
type OperationResult struct {
	GasCost     int64
	HaltReason  HaltReason
	PCIncrement uint32
}

// TracerHooks is the optional pre/post-operation upcall vtable, equivalent
// to the host's TracerCallbacks struct. A nil *TracerHooks (or a nil
// individual hook) disables that callback. Hooks must not mutate the
// control block: they observe state, they don't change it.
//
// Ordering is guaranteed by the dispatch loop: Pre(op_i) happens-before any
// state change of op_i; Post(op_i) happens-after all of op_i's state
// changes and before Pre(op_i+1). The pre hook observes gas before
// consumption; the post hook observes gas after consumption.
type TracerHooks struct {
	Pre  func(cb *ControlBlock, opcode OpCode)
	Post func(cb *ControlBlock, opcode OpCode, result OperationResult)
}

func (h *TracerHooks) firePre(cb *ControlBlock, opcode OpCode) {
	if h == nil || h.Pre == nil {
		return
	}
	h.Pre(cb, opcode)
}

func (h *TracerHooks) firePost(cb *ControlBlock, opcode OpCode, result OperationResult) {
	if h == nil || h.Post == nil {
		return
	}
	h.Post(cb, opcode, result)
}

// StructLogEntry is a single step recorded by StructLogTracer, grounded on
// the teacher's step-logging shape but keyed off the control block rather
// than a *big.Int-backed stack snapshot.
type StructLogEntry struct {
	PC      uint32
	Op      OpCode
	Gas     int64
	GasCost int64
}

// StructLogTracer collects step-by-step execution logs by implementing
// TracerHooks' Pre/Post callbacks; it's the struct-logging counterpart a
// host would wire in for debugging or conformance-suite replay.
type StructLogTracer struct {
	Logs []StructLogEntry
}

// NewStructLogTracer returns a TracerHooks pair backed by a fresh
// StructLogTracer.
func NewStructLogTracer() (*StructLogTracer, *TracerHooks) {
	t := &StructLogTracer{}
	return t, &TracerHooks{
		Pre: t.capturePre,
		Post: func(cb *ControlBlock, op OpCode, result OperationResult) {
			if n := len(t.Logs); n > 0 {
				t.Logs[n-1].GasCost = result.GasCost
			}
		},
	}
}

func (t *StructLogTracer) capturePre(cb *ControlBlock, op OpCode) {
	t.Logs = append(t.Logs, StructLogEntry{
		PC:  cb.PC(),
		Op:  op,
		Gas: cb.GasRemaining(),
	})
}
