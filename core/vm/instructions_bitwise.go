package vm

import "github.com/holiman/uint256"

func boolToUint256(dst *uint256.Int, v bool) {
	if v {
		dst.SetOne()
	} else {
		dst.Clear()
	}
}

func opLt(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { boolToUint256(dst, top.Lt(second)) })
}

func opGt(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { boolToUint256(dst, top.Gt(second)) })
}

func opSlt(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { boolToUint256(dst, top.Slt(second)) })
}

func opSgt(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { boolToUint256(dst, top.Sgt(second)) })
}

func opEq(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { boolToUint256(dst, top.Eq(second)) })
}

func opIszero(ctx *callContext) (uint32, uint64, error) {
	word, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	z := isZeroWord(word)
	var result uint256.Int
	boolToUint256(&result, z)
	uint256ToWord(&result, word)
	return 1, 0, nil
}

func opAnd(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.And(top, second) })
}

func opOr(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Or(top, second) })
}

func opXor(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) { dst.Xor(top, second) })
}

func opNot(ctx *callContext) (uint32, uint64, error) {
	word, err := ctx.stack.Peek()
	if err != nil {
		return 0, 0, err
	}
	x := wordToUint256(word)
	var z uint256.Int
	z.Not(x)
	uint256ToWord(&z, word)
	return 1, 0, nil
}

func opByte(ctx *callContext) (uint32, uint64, error) {
	// Stack: top = byte index, second = value. Pushes the byte at that
	// index (0 = most significant), or zero if the index is out of range.
	return binaryOp(ctx, func(dst, top, second *uint256.Int) {
		dst.Set(second)
		dst.Byte(top)
	})
}

func opShl(ctx *callContext) (uint32, uint64, error) {
	// Stack: top = shift amount, second = value. A shift amount that
	// doesn't fit in a uint (let alone <256) shifts everything out.
	return binaryOp(ctx, func(dst, top, second *uint256.Int) {
		if top.LtUint64(256) {
			dst.Lsh(second, uint(top.Uint64()))
		} else {
			dst.Clear()
		}
	})
}

func opShr(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) {
		if top.LtUint64(256) {
			dst.Rsh(second, uint(top.Uint64()))
		} else {
			dst.Clear()
		}
	})
}

func opSar(ctx *callContext) (uint32, uint64, error) {
	return binaryOp(ctx, func(dst, top, second *uint256.Int) {
		if top.LtUint64(256) {
			dst.SRsh(second, uint(top.Uint64()))
			return
		}
		if second.Sign() >= 0 {
			dst.Clear()
		} else {
			dst.SetAllOne()
		}
	})
}
