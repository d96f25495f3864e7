package vm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func newTestStoragePlane(maxSlots uint32) *StoragePlane {
	f := newTestFrame(nil, 0, false)
	return newStoragePlane(f.cb, f.cb.Storage(maxSlots), maxSlots)
}

func TestStorageAddThenFind(t *testing.T) {
	sp := newTestStoragePlane(4)
	addr := common.HexToAddress("0x01")
	key := common.HexToHash("0x02")

	_, found := sp.find(addr, key)
	require.False(t, found)

	e, ok := sp.add(addr, key)
	require.True(t, ok)
	require.False(t, e.IsWarm())
	e.SetWarm(true)
	e.SetValue(common.HexToHash("0x2A"))

	got, found := sp.find(addr, key)
	require.True(t, found)
	require.True(t, got.IsWarm())
	require.Equal(t, common.HexToHash("0x2A"), got.Value())
}

func TestStorageDistinctKeysDoNotCollide(t *testing.T) {
	sp := newTestStoragePlane(4)
	addr := common.HexToAddress("0x01")
	k1, k2 := common.HexToHash("0x01"), common.HexToHash("0x02")

	e1, ok := sp.add(addr, k1)
	require.True(t, ok)
	e1.SetValue(common.HexToHash("0x10"))

	e2, ok := sp.add(addr, k2)
	require.True(t, ok)
	e2.SetValue(common.HexToHash("0x20"))

	got1, _ := sp.find(addr, k1)
	got2, _ := sp.find(addr, k2)
	require.Equal(t, common.HexToHash("0x10"), got1.Value())
	require.Equal(t, common.HexToHash("0x20"), got2.Value())
}

func TestStoragePlaneExhaustion(t *testing.T) {
	sp := newTestStoragePlane(1)
	addr := common.HexToAddress("0x01")

	_, ok := sp.add(addr, common.HexToHash("0x01"))
	require.True(t, ok)

	_, ok = sp.add(addr, common.HexToHash("0x02"))
	require.False(t, ok)
}

func TestStorageOriginalIsIndependentOfValue(t *testing.T) {
	sp := newTestStoragePlane(4)
	addr := common.HexToAddress("0x01")
	key := common.HexToHash("0x01")

	e, ok := sp.add(addr, key)
	require.True(t, ok)
	e.SetOriginal(common.HexToHash("0x05"))
	e.SetValue(common.HexToHash("0x09"))

	got, _ := sp.find(addr, key)
	require.Equal(t, common.HexToHash("0x05"), got.Original())
	require.Equal(t, common.HexToHash("0x09"), got.Value())
}
