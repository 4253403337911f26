package prm

// PRM module offsets shared by OMAP2 and OMAP3. Each module occupies a
// 0x100-byte window within the PRM instance.
const (
	IVA2Mod int16 = 0x0000
	MPUMod  int16 = 0x0100
	CoreMod int16 = 0x0200
	GFXMod  int16 = 0x0300
	WkupMod int16 = 0x0400
	OCPMod  int16 = 0x0800

	// GRMod is the OMAP3430 global-register module, home of the voltage
	// controller / voltage processor registers.
	GRMod int16 = 0x1270
)

// Per-module reset registers.
const (
	// RMRstCtrl is the reset-control register offset within a module
	// window. Each bit asserts the hardreset line of one submodule.
	RMRstCtrl uint16 = 0x50

	// RMRstST is the reset-status register offset. Hardware latches a
	// status bit on a fresh reset-to-running transition; software clears
	// it by writing 1.
	RMRstST uint16 = 0x58
)

// IRQStatusMPUOffset locates PRM_IRQSTATUS_MPU within the OCP module. The
// register is shared by all voltage rails and is write-1-to-clear.
const IRQStatusMPUOffset uint16 = 0x18

// Transaction-done status bits in PRM_IRQSTATUS_MPU.
const (
	// VP1TxDoneSTMask flags a completed VP transaction on the MPU rail.
	VP1TxDoneSTMask uint32 = 1 << 15

	// VP2TxDoneSTMask flags a completed VP transaction on the core rail.
	VP2TxDoneSTMask uint32 = 1 << 21

	// ABBTxDoneSTMask flags a completed ABB LDO transaction. OMAP3630
	// only; reserved on earlier chips.
	ABBTxDoneSTMask uint32 = 1 << 26
)

// MaxHardresetWait bounds the deassertion poll: the maximum number of
// status reads before a submodule that has not left reset is declared
// stuck.
const MaxHardresetWait = 10000
