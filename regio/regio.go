// Package regio provides 32-bit register-space access for memory-mapped
// hardware blocks. A Space is a word-granular bus; a Region anchors a Space
// at the base address of one hardware block and resolves module-relative
// register addresses.
package regio

// Space is a 32-bit register bus. Accesses are word-granular; there is no
// byte access, matching MMIO semantics on the PRCM interconnect.
//
// Implementations are not required to be safe for concurrent use. Callers
// performing read-modify-write sequences must serialize them externally.
type Space interface {
	// Read32 returns the register word at addr.
	Read32(addr uint32) uint32

	// Write32 stores val to the register word at addr.
	Write32(addr uint32, val uint32)
}

// Region is a Space anchored at the base address of one hardware block
// (e.g. the PRM or CM instance). Register addresses are computed as
// base + module offset + register index.
//
// Module offsets are signed: on these chips some CM module offsets are
// negative relative to the block base.
type Region struct {
	space Space
	base  uint32
}

// NewRegion creates a Region over space with the given block base address.
func NewRegion(space Space, base uint32) *Region {
	return &Region{space: space, base: base}
}

// Base returns the block base address.
func (r *Region) Base() uint32 {
	return r.base
}

// Addr resolves a module-relative register address.
// No bounds checking is performed; an offset outside the block's register
// map addresses whatever the bus decodes there.
func (r *Region) Addr(module int16, idx uint16) uint32 {
	return uint32(int64(r.base) + int64(module) + int64(idx))
}

// Read reads the register at module+idx.
func (r *Region) Read(module int16, idx uint16) uint32 {
	return r.space.Read32(r.Addr(module, idx))
}

// Write writes val to the register at module+idx.
func (r *Region) Write(val uint32, module int16, idx uint16) {
	r.space.Write32(r.Addr(module, idx), val)
}
