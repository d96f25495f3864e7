package vm

func opMload(ctx *callContext) (uint32, uint64, error) {
	offsetWord, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	offset := readU64Low(offsetWord)
	data, err := ctx.memory.GetPtr(offset, wordSize)
	if err != nil {
		return 0, 0, err
	}
	copy(offsetWord, data)
	return 1, 0, nil
}

func opMstore(ctx *callContext) (uint32, uint64, error) {
	// Spec order: pops offset then value (offset is top of stack).
	offsetWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	offset := readU64Low(offsetWord)
	valueWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	var value [wordSize]byte
	copy(value[:], valueWord)
	if err := ctx.memory.Set(offset, value[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opMstore8(ctx *callContext) (uint32, uint64, error) {
	offsetWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	offset := readU64Low(offsetWord)
	valueWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	b := valueWord[wordSize-1]
	if err := ctx.memory.SetByte(offset, b); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opMsize(ctx *callContext) (uint32, uint64, error) {
	var word [wordSize]byte
	writeU64Low(ctx.memory.Len(), word[:])
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

// copyToMemory implements the CALLDATACOPY/CODECOPY shape: pop
// (destOffset, srcOffset, length), copy length bytes from src (right-padded
// with zero past its bounds) into memory at destOffset. Priced per word on
// top of the handler's constant gas, same as the teacher's copy opcodes.
func copyToMemory(ctx *callContext, src []byte) (uint32, uint64, error) {
	// Stack order (top to bottom): destOffset, srcOffset, length.
	destOffsetWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	srcOffsetWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	lengthWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	length := readU64Low(lengthWord)
	srcOffset := readU64Low(srcOffsetWord)
	destOffset := readU64Low(destOffsetWord)

	buf := make([]byte, length)
	for i := uint64(0); i < length; i++ {
		if srcOffset+i < uint64(len(src)) {
			buf[i] = src[srcOffset+i]
		}
	}
	if err := ctx.memory.Set(destOffset, buf); err != nil {
		return 0, 0, err
	}
	return 1, copyWordCost(length), nil
}

func opCalldatacopy(ctx *callContext) (uint32, uint64, error) {
	return copyToMemory(ctx, ctx.input)
}

func opCodecopy(ctx *callContext) (uint32, uint64, error) {
	return copyToMemory(ctx, ctx.code)
}
