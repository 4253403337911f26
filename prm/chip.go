package prm

// Chip identifies the SoC generation the driver is running on. It is
// resolved once by platform init (from the ID code registers) and injected
// at construction, replacing per-call CPU identification.
type Chip int

const (
	// ChipUnknown is an unidentified or unsupported SoC. All hardreset
	// operations fail on it.
	ChipUnknown Chip = iota

	// ChipOMAP2 covers the OMAP24xx generation.
	ChipOMAP2

	// ChipOMAP3 covers the OMAP34xx generation.
	ChipOMAP3

	// ChipOMAP3630 is the OMAP36xx die shrink. Register layout matches
	// OMAP3; it additionally implements the ABB LDO on the MPU rail.
	ChipOMAP3630
)

// String returns the chip name.
func (c Chip) String() string {
	switch c {
	case ChipOMAP2:
		return "OMAP2"
	case ChipOMAP3:
		return "OMAP3"
	case ChipOMAP3630:
		return "OMAP3630"
	default:
		return "unknown"
	}
}

// Supported reports whether this driver layer supports the chip.
func (c Chip) Supported() bool {
	return c == ChipOMAP2 || c == ChipOMAP3 || c == ChipOMAP3630
}

// HasABB reports whether the chip implements the adaptive body bias LDO.
func (c Chip) HasABB() bool {
	return c == ChipOMAP3630
}
