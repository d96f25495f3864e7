package vm

import "github.com/ethereum/go-ethereum/common"

// Storage entry field offsets within one StorageEntrySize-byte record.
const (
	storeOffAddress  = 0
	storeOffKey      = 20
	storeOffValue    = 52
	storeOffOriginal = 84
	storeOffIsWarm   = 116
)

// StorageEntry is a decoded view of one (address, key) -> value record in
// the flat storage plane, mirroring spec's witness-entry layout.
type StorageEntry struct {
	buf []byte // StorageEntrySize-byte slice aliasing the plane
}

func (e StorageEntry) Address() common.Address { return common.BytesToAddress(e.buf[storeOffAddress : storeOffAddress+addressSize]) }
func (e StorageEntry) Key() common.Hash         { return common.BytesToHash(e.buf[storeOffKey : storeOffKey+wordSize]) }
func (e StorageEntry) Value() common.Hash       { return common.BytesToHash(e.buf[storeOffValue : storeOffValue+wordSize]) }
func (e StorageEntry) Original() common.Hash    { return common.BytesToHash(e.buf[storeOffOriginal : storeOffOriginal+wordSize]) }
func (e StorageEntry) IsWarm() bool             { return e.buf[storeOffIsWarm] != 0 }

func (e StorageEntry) setKey(k common.Hash)      { copy(e.buf[storeOffKey:storeOffKey+wordSize], k.Bytes()) }
func (e StorageEntry) setAddress(a common.Address) {
	copy(e.buf[storeOffAddress:storeOffAddress+addressSize], a.Bytes())
}
func (e StorageEntry) SetValue(v common.Hash)    { copy(e.buf[storeOffValue:storeOffValue+wordSize], v.Bytes()) }
func (e StorageEntry) SetOriginal(v common.Hash) { copy(e.buf[storeOffOriginal:storeOffOriginal+wordSize], v.Bytes()) }
func (e StorageEntry) SetWarm(warm bool) {
	if warm {
		e.buf[storeOffIsWarm] = 1
	} else {
		e.buf[storeOffIsWarm] = 0
	}
}

// StoragePlane is a flat, append-only array of witness entries with linear
// (address, key) lookup, matching spec.md's storage plane API (find/add)
// rather than a map: the shared-memory contract gives the host a flat,
// pointer-free array it can pre-populate and read back without any
// marshalling step.
type StoragePlane struct {
	cb       *ControlBlock
	buf      []byte // maxSlots * StorageEntrySize bytes
	maxSlots uint32
}

func newStoragePlane(cb *ControlBlock, buf []byte, maxSlots uint32) *StoragePlane {
	return &StoragePlane{cb: cb, buf: buf, maxSlots: maxSlots}
}

func (p *StoragePlane) count() uint32 { return p.cb.WarmStorageCount() }

func (p *StoragePlane) entryAt(i uint32) StorageEntry {
	off := uint64(i) * uint64(StorageEntrySize)
	return StorageEntry{buf: p.buf[off : off+StorageEntrySize]}
}

// find returns the entry for (address, key) via linear scan, or the zero
// value and false if absent.
func (p *StoragePlane) find(address common.Address, key common.Hash) (StorageEntry, bool) {
	n := p.count()
	for i := uint32(0); i < n; i++ {
		e := p.entryAt(i)
		if e.Address() == address && e.Key() == key {
			return e, true
		}
	}
	return StorageEntry{}, false
}

// add appends a new zero-value, zero-original, cold entry for (address,
// key). Returns false if the plane is already at maxSlots capacity.
func (p *StoragePlane) add(address common.Address, key common.Hash) (StorageEntry, bool) {
	n := p.count()
	if n >= p.maxSlots {
		return StorageEntry{}, false
	}
	e := p.entryAt(n)
	for i := range e.buf {
		e.buf[i] = 0
	}
	e.setAddress(address)
	e.setKey(key)
	p.cb.SetWarmStorageCount(n + 1)
	return e, true
}
