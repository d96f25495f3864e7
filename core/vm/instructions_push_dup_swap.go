package vm

func opPush0(ctx *callContext) (uint32, uint64, error) {
	var word [wordSize]byte
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

// makePush returns a handler for PUSHn: read n bytes following the opcode
// from the code plane (right-zero-padded if code runs out), right-align
// into a 32-byte word, and push it. pc advances by n+1 (the opcode byte
// plus its n immediate bytes).
func makePush(n int) Handler {
	return func(ctx *callContext) (uint32, uint64, error) {
		pc := uint64(ctx.cb.PC())
		var word [wordSize]byte
		start := pc + 1
		for i := 0; i < n; i++ {
			if start+uint64(i) < uint64(len(ctx.code)) {
				word[wordSize-n+i] = ctx.code[start+uint64(i)]
			}
		}
		if err := ctx.stack.Push(word[:]); err != nil {
			return 0, 0, err
		}
		return uint32(n + 1), 0, nil
	}
}

func makeDup(n int) Handler {
	return func(ctx *callContext) (uint32, uint64, error) {
		if err := ctx.stack.Dup(n); err != nil {
			return 0, 0, err
		}
		return 1, 0, nil
	}
}

func makeSwap(n int) Handler {
	return func(ctx *callContext) (uint32, uint64, error) {
		if err := ctx.stack.Swap(n); err != nil {
			return 0, 0, err
		}
		return 1, 0, nil
	}
}
