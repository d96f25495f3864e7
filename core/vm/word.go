package vm

import "github.com/holiman/uint256"

// readU64Low interprets the last 8 bytes of a 32-byte big-endian word as an
// unsigned 64-bit integer. Kept as a named low-level primitive matching the
// reference interpreter's documented 64-bit shortcut; handlers use it to read
// memory offsets, lengths, call-data offsets and jump destinations, and the
// upper 24 bytes of the word are not examined.
func readU64Low(word []byte) uint64 {
	var v uint64
	for _, b := range word[24:32] {
		v = v<<8 | uint64(b)
	}
	return v
}

// writeU64Low zeroes the first 24 bytes of word and writes value big-endian
// into the last 8.
func writeU64Low(value uint64, word []byte) {
	for i := 0; i < 24; i++ {
		word[i] = 0
	}
	for i := 31; i >= 24; i-- {
		word[i] = byte(value)
		value >>= 8
	}
}

// isZeroWord reports whether all 32 bytes of word are zero.
func isZeroWord(word []byte) bool {
	for _, b := range word {
		if b != 0 {
			return false
		}
	}
	return true
}

// wordToUint256 decodes a 32-byte big-endian word into a full-width integer.
// Arithmetic and comparison opcodes operate on this representation rather
// than the low-64-bit shortcut: this repo resolves the spec's Open Question
// in favor of full 256-bit, Ethereum-conformant semantics.
func wordToUint256(word []byte) *uint256.Int {
	var z uint256.Int
	z.SetBytes(word)
	return &z
}

// uint256ToWord encodes z as a 32-byte big-endian word, overwriting dst.
func uint256ToWord(z *uint256.Int, dst []byte) {
	b := z.Bytes32()
	copy(dst, b[:])
}
