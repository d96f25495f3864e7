package vm

func opStop(ctx *callContext) (uint32, uint64, error) {
	ctx.cb.SetState(StateCompletedSuccess)
	return 0, 0, nil
}

func opPop(ctx *callContext) (uint32, uint64, error) {
	if _, err := ctx.stack.Pop(); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opPc(ctx *callContext) (uint32, uint64, error) {
	var word [wordSize]byte
	writeU64Low(uint64(ctx.cb.PC()), word[:])
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opGas(ctx *callContext) (uint32, uint64, error) {
	var word [wordSize]byte
	writeU64Low(uint64(ctx.cb.GasRemaining()), word[:])
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opJumpdest(ctx *callContext) (uint32, uint64, error) {
	return 1, 0, nil
}

func opNoop(ctx *callContext) (uint32, uint64, error) {
	return 1, 0, nil
}

func opInvalid(ctx *callContext) (uint32, uint64, error) {
	return 0, 0, ErrInvalidOpcode
}

// validJumpDest reports whether dest lands on a JUMPDEST byte within code
// bounds, per spec's simple rule: code[dest] == 0x5B && dest < code_size.
// This deliberately does not perform push-data-aware analysis (a JUMPDEST
// byte that is actually push immediate data is, per this rule, still a
// valid destination) — spec's minimum contract, not the stricter
// jumpdest-analysis some production interpreters pre-compute.
func validJumpDest(code []byte, dest uint64) bool {
	return dest < uint64(len(code)) && OpCode(code[dest]) == JUMPDEST
}

func opJump(ctx *callContext) (uint32, uint64, error) {
	destWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	dest := readU64Low(destWord)
	if !validJumpDest(ctx.code, dest) {
		return 0, 0, ErrInvalidJump
	}
	ctx.cb.SetPC(uint32(dest))
	return 0, 0, nil
}

func opJumpi(ctx *callContext) (uint32, uint64, error) {
	destWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	condWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	if isZeroWord(condWord) {
		return 1, 0, nil
	}
	dest := readU64Low(destWord)
	if !validJumpDest(ctx.code, dest) {
		return 0, 0, ErrInvalidJump
	}
	ctx.cb.SetPC(uint32(dest))
	return 0, 0, nil
}
