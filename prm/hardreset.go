package prm

import "fmt"

// IsHardresetAsserted reports whether the hardreset line at bit shift of
// mod's reset-control register is currently asserted. It returns
// ErrUnsupportedChip on chips this layer does not support.
func (p *PRM) IsHardresetAsserted(mod int16, shift uint) (bool, error) {
	if !p.chip.Supported() {
		return false, fmt.Errorf("is-hardreset-asserted on %s: %w", p.chip, ErrUnsupportedChip)
	}

	return p.ReadModBitsShift(mod, RMRstCtrl, 1<<shift) != 0, nil
}

// AssertHardreset places the submodule behind the hardreset line at bit
// shift of mod into reset. Some IP blocks (DSP, IVA) contain processors
// with multiple hardreset lines resetting different submodules; assertion
// takes effect immediately and is not waited on. Caller must lock.
func (p *PRM) AssertHardreset(mod int16, shift uint) error {
	if !p.chip.Supported() {
		return fmt.Errorf("assert hardreset on %s: %w", p.chip, ErrUnsupportedChip)
	}

	mask := uint32(1) << shift
	p.RMWModRegBits(mask, mask, mod, RMRstCtrl)

	return nil
}

// DeassertHardreset takes the submodule behind the hardreset line at bit
// rstShift out of reset and waits for the PRM to signal completion on the
// status bit at stShift. Caller must lock.
//
// Returns ErrAlreadyDeasserted if the line was already out of reset (no
// register is modified), or ErrTimeout if hardware does not acknowledge
// within the poll budget (the control bit has still been cleared).
func (p *PRM) DeassertHardreset(mod int16, rstShift, stShift uint) error {
	if !p.chip.Supported() {
		return fmt.Errorf("deassert hardreset on %s: %w", p.chip, ErrUnsupportedChip)
	}

	rst := uint32(1) << rstShift
	st := uint32(1) << stShift

	// Check the current state to avoid de-asserting the line twice.
	if p.ReadModBitsShift(mod, RMRstCtrl, rst) == 0 {
		return ErrAlreadyDeasserted
	}

	// Clear any stale reset status by writing 1 to the status bit. This
	// must happen before the control bit is cleared: hardware latches the
	// status bit only on a fresh reset-to-running transition, and clearing
	// afterwards would race with hardware setting it.
	p.RMWModRegBits(0xffffffff, st, mod, RMRstST)
	// De-assert the reset control line.
	p.RMWModRegBits(rst, 0, mod, RMRstCtrl)
	// Wait for the status bit to latch.
	for i := 0; i < p.hardresetWait; i++ {
		if p.ReadModBitsShift(mod, RMRstST, st) != 0 {
			return nil
		}
	}

	return fmt.Errorf("module at 0x%04X line %d: %w", uint16(mod), rstShift, ErrTimeout)
}
