package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryWordCost(t *testing.T) {
	require.EqualValues(t, 0, memoryWordCost(0))
	require.EqualValues(t, GasMemory*4, memoryWordCost(4))
}

func TestCopyWordCost(t *testing.T) {
	require.EqualValues(t, 0, copyWordCost(0))
	require.EqualValues(t, GasCopy, copyWordCost(1))
	require.EqualValues(t, GasCopy, copyWordCost(32))
	require.EqualValues(t, GasCopy*2, copyWordCost(33))
}

func TestSstoreGasFirstTimeSet(t *testing.T) {
	var original, current [32]byte // both zero: never touched before
	newValue := wordFromUint64(42)

	cost, refund := sstoreGas(false, original, current, newValue)
	require.EqualValues(t, GasSstoreSet, cost)
	require.EqualValues(t, 0, refund)
}

func TestSstoreGasClearToZeroRefunds(t *testing.T) {
	original := wordFromUint64(42)
	current := wordFromUint64(42)
	var newValue [32]byte // clearing to zero

	cost, refund := sstoreGas(true, original, current, newValue)
	require.EqualValues(t, GasSloadWarm, cost)
	require.EqualValues(t, sstoreRefundClear, refund)
}

func TestSstoreGasZeroToZeroNoRefund(t *testing.T) {
	var original, current, newValue [32]byte

	cost, refund := sstoreGas(false, original, current, newValue)
	require.EqualValues(t, GasSloadCold, cost)
	require.EqualValues(t, 0, refund)
}

func TestSstoreGasDirtyRewriteIsWarmOrColdPrice(t *testing.T) {
	original := wordFromUint64(1)
	current := wordFromUint64(2)
	newValue := wordFromUint64(3)

	costWarm, refund := sstoreGas(true, original, current, newValue)
	require.EqualValues(t, GasSloadWarm, costWarm)
	require.EqualValues(t, 0, refund)

	costCold, _ := sstoreGas(false, original, current, newValue)
	require.EqualValues(t, GasSloadCold, costCold)
}
