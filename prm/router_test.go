package prm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/soclab/omapprm/prm"
	"github.com/soclab/omapprm/regio"
)

var _ = Describe("Router", func() {
	const (
		cmBase  = 0x48004000
		prmBase = 0x48306000
		cm2Base = 0x48008000
	)

	var (
		space  *regio.StorageSpace
		router *prm.Router
	)

	BeforeEach(func() {
		space = regio.NewStorageSpace(1 << 32)
		router = prm.NewRouter(
			regio.NewRegion(space, cmBase),
			regio.NewRegion(space, prmBase),
			regio.NewRegion(space, cm2Base),
		)
	})

	Describe("Write", func() {
		It("should dispatch a plain offset to the default CM region", func() {
			Expect(router.Write(0x11111111, 0x0100, 0x10)).To(Succeed())

			Expect(space.Read32(cmBase + 0x0110)).To(Equal(uint32(0x11111111)))
		})

		It("should dispatch a PRM-selector offset to the PRM region", func() {
			Expect(router.Write(0x22222222, prm.PRMBaseID|0x0100, 0x10)).To(Succeed())

			Expect(space.Read32(prmBase + 0x0110)).To(Equal(uint32(0x22222222)))
		})

		It("should dispatch a CM2-selector offset to the CM2 region", func() {
			Expect(router.Write(0x33333333, prm.CM2BaseID|0x0200, 0x14)).To(Succeed())

			Expect(space.Read32(cm2Base + 0x0214)).To(Equal(uint32(0x33333333)))
		})

		It("should reject the unrouted PRCM MPU selector without mutating", func() {
			err := router.Write(0x44444444, prm.PRCMMPUBaseID|0x0100, 0x10)

			Expect(err).To(MatchError(prm.ErrUnknownBase))
			Expect(space.Read32(cmBase + 0x0110)).To(Equal(uint32(0)))
			Expect(space.Read32(prmBase + 0x0110)).To(Equal(uint32(0)))
			Expect(space.Read32(cm2Base + 0x0110)).To(Equal(uint32(0)))
		})
	})

	Describe("Read", func() {
		It("should read back through the same routing", func() {
			space.Write32(prmBase+0x0110, 0xFEEDFACE)

			v, err := router.Read(prm.PRMBaseID|0x0100, 0x10)

			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(uint32(0xFEEDFACE)))
		})

		It("should return zero and ErrUnknownBase for an unknown selector", func() {
			v, err := router.Read(prm.PRCMMPUBaseID|0x0100, 0x10)

			Expect(err).To(MatchError(prm.ErrUnknownBase))
			Expect(v).To(Equal(uint32(0)))
		})
	})
})
