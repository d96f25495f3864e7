package vm

import (
	"github.com/ethereum/go-ethereum/log"
)

// Execute runs a single message frame to completion (or to a halt) against
// block, a host-owned shared region holding the control block followed by
// its planes. hooks is the optional tracer vtable; nil disables tracing.
// cfg carries the build-time configuration choices from spec §9.
//
// All output is through block; Execute's error return is reserved for
// programming errors in how the host laid out the region (e.g. a plane
// that doesn't fit), never for in-frame execution failures, which are
// reported via state/halt_reason per spec §7.
func Execute(block []byte, hooks *TracerHooks, cfg Config) error {
	if len(block) < ControlBlockSize {
		log.Error("vm: control block region too small", "len", len(block))
		return ErrOutOfBounds(len(block))
	}
	cb := NewControlBlock(block)
	jt := NewJumpTable(cfg.UnassignedOpcodePolicy)

	stack := newStack(cb)
	memReserved := cb.Memory(cfg.MemoryCeiling)
	memory := newMemory(cb, memReserved, cfg.MemoryCeiling)
	code := cb.Code()
	input := cb.Input()
	storage := newStoragePlane(cb, cb.Storage(cfg.MaxStorageSlots), cfg.MaxStorageSlots)
	logs := newLogsPlane(cb, cb.Logs(cfg.MaxLogs), cfg.MaxLogs)

	ctx := &callContext{
		cb:      cb,
		stack:   stack,
		memory:  memory,
		code:    code,
		input:   input,
		storage: storage,
		logs:    logs,
	}

	run(ctx, jt, hooks)
	return nil
}

// run is the 11-step dispatch loop from spec §4.5.
func run(ctx *callContext, jt *JumpTable, hooks *TracerHooks) {
	cb := ctx.cb
	cb.SetState(StateExecuting)

	for {
		if cb.PC() >= cb.CodeSize() || cb.State() != StateExecuting {
			break
		}
		if cb.GasRemaining() < gasFloor {
			cb.SetState(StateExceptionalHalt)
			cb.SetHaltReason(HaltInsufficientGas)
			return
		}

		opcode := OpCode(ctx.code[cb.PC()])
		op := jt[opcode]

		// Stack pre-validation, mirroring the teacher's sLen-against-
		// minStack/maxStack gate: a handler never runs against a stack
		// shape it can't safely pop from or push onto.
		if sLen := int(cb.StackSize()); sLen < op.minStack {
			cb.SetState(StateExceptionalHalt)
			cb.SetHaltReason(HaltStackUnderflow)
			return
		} else if op.maxStack != 0 && sLen > op.maxStack {
			cb.SetState(StateExceptionalHalt)
			cb.SetHaltReason(HaltStackOverflow)
			return
		}

		hooks.firePre(cb, opcode)

		inc, dynamicCost, err := op.execute(ctx)
		cost := op.constantGas + dynamicCost

		if err != nil {
			reason := haltReasonFor(err)
			cb.SetState(StateExceptionalHalt)
			cb.SetHaltReason(reason)
			return
		}

		if cb.GasRemaining() < int64(cost) {
			cb.SetState(StateExceptionalHalt)
			cb.SetHaltReason(HaltInsufficientGas)
			return
		}
		cb.SetGasRemaining(cb.GasRemaining() - int64(cost))
		opcodesDispatchedCounter.Inc(1)
		gasChargedCounter.Inc(int64(cost))

		hooks.firePost(cb, opcode, OperationResult{GasCost: int64(cost), HaltReason: HaltNone, PCIncrement: inc})

		if inc > 0 {
			cb.SetPC(cb.PC() + inc)
		}
	}

	if cb.State() == StateExecuting {
		cb.SetState(StateCompletedSuccess)
	}
}

// ErrOutOfBounds reports the host having reserved fewer bytes than the
// control block requires; this is a host programming error, distinct from
// the in-frame OUT_OF_BOUNDS halt reason.
type ErrOutOfBounds int

func (e ErrOutOfBounds) Error() string {
	return "vm: shared region too small for control block"
}
