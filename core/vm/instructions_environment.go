package vm

import "github.com/ethereum/go-ethereum/common"

func pushAddress(ctx *callContext, a common.Address) (uint32, uint64, error) {
	var word [wordSize]byte
	copy(word[wordSize-addressSize:], a.Bytes())
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func pushHash(ctx *callContext, h common.Hash) (uint32, uint64, error) {
	if err := ctx.stack.Push(h.Bytes()); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opAddress(ctx *callContext) (uint32, uint64, error) { return pushAddress(ctx, ctx.cb.Recipient()) }
func opCaller(ctx *callContext) (uint32, uint64, error)  { return pushAddress(ctx, ctx.cb.Sender()) }
func opOrigin(ctx *callContext) (uint32, uint64, error)  { return pushAddress(ctx, ctx.cb.Originator()) }

func opCallvalue(ctx *callContext) (uint32, uint64, error) { return pushHash(ctx, ctx.cb.Value()) }
func opGasprice(ctx *callContext) (uint32, uint64, error)  { return pushHash(ctx, ctx.cb.GasPrice()) }

func opCalldatasize(ctx *callContext) (uint32, uint64, error) {
	var word [wordSize]byte
	writeU64Low(uint64(len(ctx.input)), word[:])
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}

func opCalldataload(ctx *callContext) (uint32, uint64, error) {
	offsetWord, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	offset := readU64Low(offsetWord)
	var word [wordSize]byte
	for i := 0; i < wordSize; i++ {
		if offset+uint64(i) < uint64(len(ctx.input)) {
			word[i] = ctx.input[offset+uint64(i)]
		}
	}
	copy(offsetWord, word[:])
	return 1, 0, nil
}

func opCodesize(ctx *callContext) (uint32, uint64, error) {
	var word [wordSize]byte
	writeU64Low(uint64(len(ctx.code)), word[:])
	if err := ctx.stack.Push(word[:]); err != nil {
		return 0, 0, err
	}
	return 1, 0, nil
}
