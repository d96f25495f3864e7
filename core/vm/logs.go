package vm

import "github.com/ethereum/go-ethereum/common"

// Log entry field offsets within one logEntrySize-byte record, per
// SPEC_FULL.md §3.9 (a supplemented feature: the mandatory spec opcode set
// never produces a log, but LOGn is the natural generalization of the
// halt-state machine once RETURN/REVERT are wired in).
const (
	logOffTopicCount = 0
	logOffTopics     = 8
	logOffDataOffset = 136
	logOffDataLen    = 140

	logEntrySize = 144
	maxLogTopics = 4
)

// logsPlane is a flat, append-only array of log entries backed by the
// control block's logs plane, mirroring the storage plane's linear-array
// design rather than a dynamically-growing slice.
type logsPlane struct {
	cb       *ControlBlock
	buf      []byte
	maxCount uint32
}

func newLogsPlane(cb *ControlBlock, buf []byte, maxCount uint32) *logsPlane {
	return &logsPlane{cb: cb, buf: buf, maxCount: maxCount}
}

func (p *logsPlane) entryAt(i uint32) []byte {
	off := uint64(i) * uint64(logEntrySize)
	return p.buf[off : off+logEntrySize]
}

// append records one log entry. dataOffset/dataLen locate the log data
// within the output region the host reserved for it. Returns
// ErrLogsExhausted if the plane is already at capacity, matching the
// storage plane's saturation policy.
func (p *logsPlane) append(topics []common.Hash, dataOffset, dataLen uint32) error {
	n := p.cb.LogsCount()
	if n >= p.maxCount {
		return ErrLogsExhausted
	}
	e := p.entryAt(n)
	for i := range e {
		e[i] = 0
	}
	e[logOffTopicCount] = byte(len(topics))
	for i, t := range topics {
		if i >= maxLogTopics {
			break
		}
		copy(e[logOffTopics+i*wordSize:logOffTopics+(i+1)*wordSize], t.Bytes())
	}
	putU32(e, logOffDataOffset, dataOffset)
	putU32(e, logOffDataLen, dataLen)
	p.cb.SetLogsCount(n + 1)
	return nil
}

func putU32(buf []byte, off int, v uint32) {
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
}
