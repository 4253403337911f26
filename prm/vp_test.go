package prm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/soclab/omapprm/hwmodel"
	"github.com/soclab/omapprm/prm"
)

var _ = Describe("VP and ABB transactions", func() {
	var (
		model *hwmodel.Model
		p     *prm.PRM
	)

	newDriver := func(chip prm.Chip) {
		cfg := hwmodel.DefaultConfig()
		model = hwmodel.New(cfg)
		p = prm.New(model, prm.Config{Base: cfg.PRMBase, Chip: chip})
	}

	BeforeEach(func() {
		newDriver(prm.ChipOMAP3)
	})

	Describe("VPCheckTxDone", func() {
		It("should report not-done with no pending transaction", func() {
			Expect(p.VPCheckTxDone(prm.RailMPU)).To(BeFalse())
			Expect(p.VPCheckTxDone(prm.RailCore)).To(BeFalse())
		})

		It("should report done only for the rail whose bit is raised", func() {
			model.RaiseIRQStatus(prm.VP1TxDoneSTMask)

			Expect(p.VPCheckTxDone(prm.RailMPU)).To(BeTrue())
			Expect(p.VPCheckTxDone(prm.RailCore)).To(BeFalse())
		})

		It("should read not-done for an out-of-range rail", func() {
			model.RaiseIRQStatus(0xFFFFFFFF)

			Expect(p.VPCheckTxDone(prm.Rail(200))).To(BeFalse())
		})
	})

	Describe("VPClearTxDone", func() {
		It("should acknowledge the rail's transaction", func() {
			model.RaiseIRQStatus(prm.VP1TxDoneSTMask)

			p.VPClearTxDone(prm.RailMPU)

			Expect(p.VPCheckTxDone(prm.RailMPU)).To(BeFalse())
		})

		It("should leave the other rail's status alone", func() {
			model.RaiseIRQStatus(prm.VP1TxDoneSTMask | prm.VP2TxDoneSTMask)

			p.VPClearTxDone(prm.RailMPU)

			Expect(p.VPCheckTxDone(prm.RailCore)).To(BeTrue())
		})
	})

	Describe("ABB transactions", func() {
		BeforeEach(func() {
			newDriver(prm.ChipOMAP3630)
		})

		It("should report done on the MPU rail when the LDO bit is raised", func() {
			model.RaiseIRQStatus(prm.ABBTxDoneSTMask)

			Expect(p.ABBCheckTxDone(prm.RailMPU)).To(BeTrue())
		})

		It("should always read not-done on the core rail", func() {
			model.RaiseIRQStatus(0xFFFFFFFF)

			Expect(p.ABBCheckTxDone(prm.RailCore)).To(BeFalse())
		})

		It("should acknowledge without touching VP status", func() {
			model.RaiseIRQStatus(prm.ABBTxDoneSTMask | prm.VP1TxDoneSTMask)

			p.ABBClearTxDone(prm.RailMPU)

			Expect(p.ABBCheckTxDone(prm.RailMPU)).To(BeFalse())
			Expect(p.VPCheckTxDone(prm.RailMPU)).To(BeTrue())
		})

		It("should not clear anything for a rail without an ABB LDO", func() {
			model.RaiseIRQStatus(prm.VP2TxDoneSTMask)

			p.ABBClearTxDone(prm.RailCore)

			Expect(p.VPCheckTxDone(prm.RailCore)).To(BeTrue())
		})
	})

	Describe("VCVP passthroughs", func() {
		It("should access the global-register module", func() {
			p.VCVPWrite(0x0000BEEF, 0x20)

			Expect(p.ReadModReg(prm.GRMod, 0x20)).To(Equal(uint32(0x0000BEEF)))
			Expect(p.VCVPRead(0x20)).To(Equal(uint32(0x0000BEEF)))
		})

		It("should read-modify-write within the module", func() {
			p.VCVPWrite(0x000000FF, 0x24)

			v := p.VCVPRMW(0x0000000F, 0x00000005, 0x24)

			Expect(v).To(Equal(uint32(0x000000F5)))
			Expect(p.VCVPRead(0x24)).To(Equal(uint32(0x000000F5)))
		})
	})
})
