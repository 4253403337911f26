package prm

import "errors"

var (
	// ErrUnsupportedChip is returned when an operation is invoked on a
	// chip generation this layer does not support. Callers should treat
	// it as a fatal configuration error.
	ErrUnsupportedChip = errors.New("unsupported chip generation")

	// ErrAlreadyDeasserted is returned by DeassertHardreset when the
	// reset line is already out of reset. Informational: the submodule is
	// in the desired state and no register was modified.
	ErrAlreadyDeasserted = errors.New("hardreset line already deasserted")

	// ErrTimeout is returned when hardware fails to acknowledge a reset
	// deassertion within the poll budget. The control bit has been
	// cleared; the submodule is likely stuck.
	ErrTimeout = errors.New("timed out waiting for reset completion")

	// ErrUnknownBase is returned by the Router for a module offset whose
	// base selector does not name a routed region. No register is
	// accessed.
	ErrUnknownBase = errors.New("unknown base selector in module offset")
)
