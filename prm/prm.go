// Package prm implements register access and reset-control primitives for
// the Power and Reset Management block of OMAP2/3 SoCs. It is the leaf
// layer under the power-domain and clock-management drivers: it knows how
// to access PRM registers and sequence hardreset lines, not when.
//
// All state lives in hardware registers. The layer performs no caching and
// no locking: callers must serialize read-modify-write sequences touching
// the same register.
package prm

import (
	"math/bits"

	"github.com/soclab/omapprm/regio"
)

// Config carries the construction-time parameters of the PRM layer.
type Config struct {
	// Base is the physical base address of the PRM instance.
	Base uint32

	// Chip is the SoC generation, resolved by platform init.
	Chip Chip

	// HardresetWait is the poll budget (number of status reads) for
	// reset-deassertion completion.
	HardresetWait int
}

// DefaultConfig returns a Config for the OMAP3430 PRM instance.
func DefaultConfig() Config {
	return Config{
		Base:          0x48306000, // OMAP3 PRM base on L4-Core
		Chip:          ChipOMAP3,
		HardresetWait: MaxHardresetWait,
	}
}

// PRM is the register-access handle for one PRM instance.
type PRM struct {
	reg           *regio.Region
	chip          Chip
	hardresetWait int
}

// New creates a PRM layer over space using cfg. A zero HardresetWait falls
// back to MaxHardresetWait.
func New(space regio.Space, cfg Config) *PRM {
	wait := cfg.HardresetWait
	if wait <= 0 {
		wait = MaxHardresetWait
	}
	return &PRM{
		reg:           regio.NewRegion(space, cfg.Base),
		chip:          cfg.Chip,
		hardresetWait: wait,
	}
}

// Chip returns the chip generation the layer was constructed for.
func (p *PRM) Chip() Chip {
	return p.chip
}

// ReadModReg reads a register in a PRM module.
func (p *PRM) ReadModReg(module int16, idx uint16) uint32 {
	return p.reg.Read(module, idx)
}

// WriteModReg writes val to a register in a PRM module.
func (p *PRM) WriteModReg(val uint32, module int16, idx uint16) {
	p.reg.Write(val, module, idx)
}

// RMWModRegBits clears the bits in mask, sets the bits in bits, and writes
// the result back, returning the written value. bits should be a subset of
// mask. Caller must lock: the read and write are separate bus transactions
// and a concurrent writer to the same register can be lost.
func (p *PRM) RMWModRegBits(mask, bits uint32, module int16, idx uint16) uint32 {
	v := p.ReadModReg(module, idx)
	v &^= mask
	v |= bits
	p.WriteModReg(v, module, idx)

	return v
}

// SetModRegBits sets bits in a PRM register, returning the written value.
// Caller must lock.
func (p *PRM) SetModRegBits(bits uint32, module int16, idx uint16) uint32 {
	return p.RMWModRegBits(bits, bits, module, idx)
}

// ClearModRegBits clears bits in a PRM register, returning the written
// value. Caller must lock.
func (p *PRM) ClearModRegBits(bits uint32, module int16, idx uint16) uint32 {
	return p.RMWModRegBits(bits, 0, module, idx)
}

// ReadModBitsShift reads a PRM register, masks it, and shifts the field
// down to bit 0. A zero mask returns 0.
func (p *PRM) ReadModBitsShift(domain int16, idx uint16, mask uint32) uint32 {
	if mask == 0 {
		return 0
	}

	v := p.ReadModReg(domain, idx)
	v &= mask
	v >>= uint(bits.TrailingZeros32(mask))

	return v
}
