package vm

import "github.com/creasty/defaults"

// Config carries the interpreter's build-time configuration choices from
// spec §9's Design Notes. It is constructed in Go by the host; there is no
// CLI, environment, or file surface (spec §6.4), so the defaults tags here
// only apply when a host builds a Config with unset fields and calls
// NewConfig rather than hand-filling every field.
type Config struct {
	// UnassignedOpcodePolicy selects the stub behavior for opcodes outside
	// the implemented set.
	UnassignedOpcodePolicy UnassignedOpcodePolicy `default:"0"`

	// MemoryCeiling is the hard limit on memory plane growth, in bytes.
	MemoryCeiling uint64 `default:"1048576"`

	// MaxStorageSlots bounds the storage plane's capacity; SSTORE halts
	// INVALID_OPERATION on overflow (spec §4.3) once reached.
	MaxStorageSlots uint32 `default:"1024"`

	// MaxLogs bounds the logs plane's capacity; LOGn halts OUT_OF_BOUNDS
	// on overflow (SPEC_FULL.md §3.9); like the storage plane, the logs
	// plane refuses appends once full.
	MaxLogs uint32 `default:"256"`
}

// NewConfig returns a Config with every unset field populated from its
// struct tag default, the way erigon's configuration structs use
// github.com/creasty/defaults rather than hand-written zero-value checks.
func NewConfig() (Config, error) {
	cfg := Config{}
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
