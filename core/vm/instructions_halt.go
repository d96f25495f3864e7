package vm

import "github.com/ethereum/go-ethereum/common"

func popOffsetLength(ctx *callContext) (offset, length uint64, err error) {
	offsetWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	lengthWord, err := ctx.stack.Pop()
	if err != nil {
		return 0, 0, err
	}
	return readU64Low(offsetWord), readU64Low(lengthWord), nil
}

func haltWithOutput(ctx *callContext, state State) (uint32, uint64, error) {
	offset, length, err := popOffsetLength(ctx)
	if err != nil {
		return 0, 0, err
	}
	data, err := ctx.memory.Get(offset, length)
	if err != nil {
		return 0, 0, err
	}
	out := ctx.cb.Output(uint64(len(data)))
	copy(out, data)
	ctx.cb.SetOutputSize(uint32(len(data)))
	ctx.cb.SetState(state)
	return 0, 0, nil
}

func opReturn(ctx *callContext) (uint32, uint64, error) {
	return haltWithOutput(ctx, StateCompletedSuccess)
}

func opRevert(ctx *callContext) (uint32, uint64, error) {
	return haltWithOutput(ctx, StateRevert)
}

// makeLog returns a handler for LOGn: pop (offset, length) then n topics,
// forbidden under is_static exactly like SSTORE.
func makeLog(n int) Handler {
	return func(ctx *callContext) (uint32, uint64, error) {
		if ctx.cb.IsStatic() {
			return 0, 0, ErrWriteProtection
		}
		offset, length, err := popOffsetLength(ctx)
		if err != nil {
			return 0, 0, err
		}
		topics := make([]common.Hash, n)
		for i := 0; i < n; i++ {
			w, err := ctx.stack.Pop()
			if err != nil {
				return 0, 0, err
			}
			topics[i] = common.BytesToHash(w)
		}
		data, err := ctx.memory.Get(offset, length)
		if err != nil {
			return 0, 0, err
		}
		// Log data is appended into the output plane after whatever prior
		// LOGs already wrote there; return_data_size is repurposed as that
		// running cursor, since return data itself is otherwise unused by a
		// single-frame interpreter (see DESIGN.md).
		base := ctx.cb.ReturnDataSize()
		out := ctx.cb.Output(uint64(base) + uint64(len(data)))
		copy(out[base:], data)
		ctx.cb.SetReturnDataSize(base + uint32(len(data)))

		cost := GasLog + uint64(n)*GasLogTopic + uint64(len(data))*GasLogData
		if err := ctx.logs.append(topics, base, uint32(len(data))); err != nil {
			return 0, 0, err
		}
		return 1, cost, nil
	}
}
