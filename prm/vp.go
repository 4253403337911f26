package prm

// Rail identifies an independently regulated voltage rail. Values index
// the transaction-status table densely.
type Rail uint8

const (
	// RailMPU is the MPU/IVA voltage rail (VDD1), driven by VP1.
	RailMPU Rail = iota

	// RailCore is the core voltage rail (VDD2), driven by VP2.
	RailCore

	numRails
)

// railIRQ describes the PRM_IRQSTATUS_MPU bits of one voltage rail.
// abbTxDoneST is zero for rails without an ABB LDO; checking it there
// always reads "not done".
type railIRQ struct {
	vpTxDoneST  uint32
	abbTxDoneST uint32
}

var railIRQs = [numRails]railIRQ{
	RailMPU: {
		vpTxDoneST:  VP1TxDoneSTMask,
		abbTxDoneST: ABBTxDoneSTMask, // OMAP3630 only
	},
	RailCore: {
		vpTxDoneST: VP2TxDoneSTMask,
		// no ABB for core
	},
}

func (r Rail) valid() bool {
	return r < numRails
}

// VPCheckTxDone reports whether the voltage processor of rail has flagged
// a completed transaction in PRM_IRQSTATUS_MPU. An out-of-range rail reads
// as not done.
func (p *PRM) VPCheckTxDone(rail Rail) bool {
	if !rail.valid() {
		return false
	}

	irqstatus := p.ReadModReg(OCPMod, IRQStatusMPUOffset)
	return irqstatus&railIRQs[rail].vpTxDoneST != 0
}

// VPClearTxDone acknowledges the VP transaction-done status of rail.
// PRM_IRQSTATUS_MPU is write-1-to-clear; other rails' bits are untouched.
func (p *PRM) VPClearTxDone(rail Rail) {
	if !rail.valid() {
		return
	}

	p.WriteModReg(railIRQs[rail].vpTxDoneST, OCPMod, IRQStatusMPUOffset)
}

// ABBCheckTxDone reports whether the ABB LDO of rail has flagged a
// completed transaction. Only meaningful on chips with ABB (see
// Chip.HasABB) and only for RailMPU; elsewhere the mask is zero and the
// answer is always false.
func (p *PRM) ABBCheckTxDone(rail Rail) bool {
	if !rail.valid() {
		return false
	}

	irqstatus := p.ReadModReg(OCPMod, IRQStatusMPUOffset)
	return irqstatus&railIRQs[rail].abbTxDoneST != 0
}

// ABBClearTxDone acknowledges the ABB transaction-done status of rail.
// A no-op for rails without an ABB LDO.
func (p *PRM) ABBClearTxDone(rail Rail) {
	if !rail.valid() || railIRQs[rail].abbTxDoneST == 0 {
		return
	}

	p.WriteModReg(railIRQs[rail].abbTxDoneST, OCPMod, IRQStatusMPUOffset)
}

// VCVPRead reads a voltage controller / voltage processor register in the
// global-register module.
func (p *PRM) VCVPRead(offset uint16) uint32 {
	return p.ReadModReg(GRMod, offset)
}

// VCVPWrite writes val to a VC/VP register in the global-register module.
func (p *PRM) VCVPWrite(val uint32, offset uint16) {
	p.WriteModReg(val, GRMod, offset)
}

// VCVPRMW read-modify-writes a VC/VP register in the global-register
// module, returning the written value. Caller must lock.
func (p *PRM) VCVPRMW(mask, bits uint32, offset uint16) uint32 {
	return p.RMWModRegBits(mask, bits, GRMod, offset)
}
