package vm

import "github.com/ethereum/go-ethereum/metrics"

// Package-level registered counters, mirroring go-ethereum's interpreter
// opcodeCommitInterruptCounter pattern: process-wide counters a host can
// scrape, not per-call return values.
var (
	opcodesDispatchedCounter = metrics.NewRegisteredCounter("vm/opcodes/dispatched", nil)
	gasChargedCounter        = metrics.NewRegisteredCounter("vm/gas/charged", nil)
)
