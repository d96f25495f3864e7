package vm

import "github.com/holiman/uint256"

// binaryOp pops the top operand, peeks the new top (the original second
// operand), applies fn(top, second), and overwrites the new top with the
// result. fn's argument order matches EVM's stack convention directly:
// SUB computes top - second, DIV computes top / second, and so on.
func binaryOp(ctx *callContext, fn func(dst, top, second *uint256.Int)) (uint32, uint64, error) {
	topWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	top := wordToUint256(topWord)
	secondWord, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	second := wordToUint256(secondWord)
	var z uint256.Int
	fn(&z, top, second)
	uint256ToWord(&z, secondWord)
	return 1, 0, nil
}

func opAdd(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Add(top, second) })
}

func opMul(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Mul(top, second) })
}

func opSub(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Sub(top, second) })
}

func opDiv(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Div(top, second) })
}

func opSdiv(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.SDiv(top, second) })
}

func opMod(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Mod(top, second) })
}

func opSmod(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.SMod(top, second) })
}

func opAddmod(ctx *callContext) (uint32, uint64, error) {
	// Stack (top to bottom): a, b, N. Result (a + b) % N replaces N.
	aWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	bWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	modWord, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	a, b, m := wordToUint256(aWord), wordToUint256(bWord), wordToUint256(modWord)
	var z uint256.Int
	z.AddMod(a, b, m)
	uint256ToWord(&z, modWord)
	return 1, 0, nil
}

func opMulmod(ctx *callContext) (uint32, uint64, error) {
	// Stack (top to bottom): a, b, N. Result (a * b) % N replaces N.
	aWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	bWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	modWord, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	a, b, m := wordToUint256(aWord), wordToUint256(bWord), wordToUint256(modWord)
	var z uint256.Int
	z.MulMod(a, b, m)
	uint256ToWord(&z, modWord)
	return 1, 0, nil
}

func opExp(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Exp(top, second) })
}

func opSignextend(ctx *callContext) (uint32, uint64, error) {
	// Stack: top = byte count, second = value. ExtendSign(value, byteCount).
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.ExtendSign(second, top) })
}
