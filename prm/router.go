package prm

import (
	"fmt"

	"github.com/soclab/omapprm/regio"
)

// Base selectors packed into bits 13..14 of a module offset's magnitude.
// The low 13 bits carry the true module offset within the selected block.
const (
	DefaultBase = 0x0
	PRMBase     = 0x1
	PRCMMPUBase = 0x2
	CM2Base     = 0x3

	BaseIDShift = 13
	BaseIDMask  = 0x3
	ModMask     = 0x1FFF

	// Encoded-offset prefixes, for building routed module offsets.
	PRMBaseID     = PRMBase << BaseIDShift
	PRCMMPUBaseID = PRCMMPUBase << BaseIDShift
	CM2BaseID     = CM2Base << BaseIDShift
)

// Router dispatches clock-management register accesses across the separate
// base regions of the PRCM: the default CM instance, the PRM instance, and
// the second CM instance. The target region is encoded in the high bits of
// the module offset (see BaseIDShift).
//
// An offset selecting an unrouted region (including PRCMMPUBase, which has
// a selector but no region here) yields ErrUnknownBase and touches no
// register.
type Router struct {
	cm  *regio.Region
	prm *regio.Region
	cm2 *regio.Region
}

// NewRouter creates a Router over the three PRCM regions.
func NewRouter(cm, prm, cm2 *regio.Region) *Router {
	return &Router{cm: cm, prm: prm, cm2: cm2}
}

// decode splits an encoded module offset into its target region and the
// true module offset.
func (r *Router) decode(module int16) (*regio.Region, int16, error) {
	mag := int32(module)
	if mag < 0 {
		mag = -mag
	}

	switch (mag >> BaseIDShift) & BaseIDMask {
	case PRMBase:
		return r.prm, module & ModMask, nil
	case CM2Base:
		return r.cm2, module & ModMask, nil
	case DefaultBase:
		return r.cm, module & ModMask, nil
	default:
		return nil, 0, fmt.Errorf("module offset 0x%04X: %w", uint16(module), ErrUnknownBase)
	}
}

// Read reads a register in a routed CM module.
func (r *Router) Read(module int16, idx uint16) (uint32, error) {
	region, mod, err := r.decode(module)
	if err != nil {
		return 0, err
	}

	return region.Read(mod, idx), nil
}

// Write writes val to a register in a routed CM module.
func (r *Router) Write(val uint32, module int16, idx uint16) error {
	region, mod, err := r.decode(module)
	if err != nil {
		return err
	}

	region.Write(val, mod, idx)
	return nil
}
