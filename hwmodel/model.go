// Package hwmodel provides a behavioral model of the PRM hardware block.
// It implements regio.Space, so the driver layer can run against it
// unmodified: reset-status latching, write-1-to-clear registers, and
// deassertion latency behave as the silicon does, observed through the
// same register interface.
package hwmodel

import (
	"github.com/soclab/omapprm/prm"
	"github.com/soclab/omapprm/regio"
)

// line identifies one hardreset line: the module window offset within the
// PRM and the control-register bit.
type line struct {
	module uint32
	bit    uint
}

// Model is a behavioral PRM block over simulated register storage.
//
// Within each module window the register at offset 0x50 is reset control
// and 0x58 is reset status. Clearing a control bit arms a completion
// countdown; the matching status bit latches on the ResetLatency-th
// subsequent status read. Status registers and PRM_IRQSTATUS_MPU are
// write-1-to-clear. Everything else is plain storage.
type Model struct {
	cfg   Config
	space *regio.StorageSpace

	// pending maps an armed hardreset line to its remaining countdown.
	pending map[line]int

	// stuck lines never acknowledge deassertion.
	stuck map[line]bool

	// statusBit overrides the control-bit to status-bit mapping for
	// lines whose status shift differs from the control shift.
	statusBit map[line]uint
}

// New creates a Model from cfg. The backing storage spans the full 32-bit
// address space (sparsely allocated), so collaborating blocks at other
// bases can share the Space.
func New(cfg Config) *Model {
	return &Model{
		cfg:       cfg,
		space:     regio.NewStorageSpace(1 << 32),
		pending:   make(map[line]int),
		stuck:     make(map[line]bool),
		statusBit: make(map[line]uint),
	}
}

// Config returns the model configuration.
func (m *Model) Config() Config {
	return m.cfg
}

// irqStatusAddr is the absolute address of PRM_IRQSTATUS_MPU.
func (m *Model) irqStatusAddr() uint32 {
	return m.cfg.PRMBase + uint32(prm.OCPMod) + uint32(prm.IRQStatusMPUOffset)
}

// classify resolves addr to its module window offset and register offset
// within the window. ok is false outside the PRM window.
func (m *Model) classify(addr uint32) (module, reg uint32, ok bool) {
	if addr < m.cfg.PRMBase || addr >= m.cfg.PRMBase+m.cfg.WindowSize {
		return 0, 0, false
	}
	off := addr - m.cfg.PRMBase
	return off - off%m.cfg.ModuleStride, off % m.cfg.ModuleStride, true
}

// Read32 implements regio.Space. Reading a module's reset-status register
// advances that module's pending deassertions.
func (m *Model) Read32(addr uint32) uint32 {
	if module, reg, ok := m.classify(addr); ok && reg == uint32(prm.RMRstST) {
		m.tickModule(module, addr)
	}
	return m.space.Read32(addr)
}

// Write32 implements regio.Space.
func (m *Model) Write32(addr uint32, val uint32) {
	if addr == m.irqStatusAddr() {
		// W1C interrupt status.
		m.space.Write32(addr, m.space.Read32(addr)&^val)
		return
	}

	module, reg, ok := m.classify(addr)
	if !ok {
		m.space.Write32(addr, val)
		return
	}

	switch reg {
	case uint32(prm.RMRstCtrl):
		m.writeRstCtrl(module, addr, val)
	case uint32(prm.RMRstST):
		// W1C reset status.
		m.space.Write32(addr, m.space.Read32(addr)&^val)
	default:
		m.space.Write32(addr, val)
	}
}

// writeRstCtrl applies a reset-control write, arming completion countdowns
// for lines leaving reset and disarming lines re-entering it.
func (m *Model) writeRstCtrl(module, addr, val uint32) {
	old := m.space.Read32(addr)
	m.space.Write32(addr, val)

	deasserted := old &^ val
	asserted := val &^ old
	for bit := uint(0); bit < 32; bit++ {
		l := line{module: module, bit: bit}
		if deasserted&(1<<bit) != 0 && !m.stuck[l] {
			m.pending[l] = m.cfg.ResetLatency
		}
		if asserted&(1<<bit) != 0 {
			delete(m.pending, l)
		}
	}
}

// tickModule advances pending deassertions in one module window, latching
// status bits whose countdown has expired.
func (m *Model) tickModule(module, stAddr uint32) {
	for l, remaining := range m.pending {
		if l.module != module {
			continue
		}
		if remaining--; remaining > 0 {
			m.pending[l] = remaining
			continue
		}
		st := l.bit
		if override, ok := m.statusBit[l]; ok {
			st = override
		}
		m.space.Write32(stAddr, m.space.Read32(stAddr)|1<<st)
		delete(m.pending, l)
	}
}

// RaiseIRQStatus injects hardware-raised bits (VP or ABB transaction-done)
// into PRM_IRQSTATUS_MPU.
func (m *Model) RaiseIRQStatus(mask uint32) {
	addr := m.irqStatusAddr()
	m.space.Write32(addr, m.space.Read32(addr)|mask)
}

// MarkStuck makes the hardreset line at bit of the module window at
// moduleOffset never acknowledge deassertion, for exercising the timeout
// path.
func (m *Model) MarkStuck(moduleOffset int16, bit uint) {
	m.stuck[line{module: uint32(moduleOffset), bit: bit}] = true
}

// MapStatusBit declares that the line at rstBit of the module window at
// moduleOffset reports completion on stBit instead of rstBit.
func (m *Model) MapStatusBit(moduleOffset int16, rstBit, stBit uint) {
	m.statusBit[line{module: uint32(moduleOffset), bit: rstBit}] = stBit
}
