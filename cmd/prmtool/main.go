// Package main provides the entry point for prmtool.
// prmtool exercises the PRM driver layer against the behavioral hardware
// model: a full hardreset assert/deassert sequence and a VP transaction
// check/clear round.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/soclab/omapprm/hwmodel"
	"github.com/soclab/omapprm/prm"
)

var (
	configPath = flag.String("config", "", "Path to model configuration JSON file")
	chipName   = flag.String("chip", "omap3", "Chip generation: omap2, omap3, omap3630")
	rstShift   = flag.Uint("rst", 0, "Reset control bit shift")
	stShift    = flag.Uint("st", 0, "Reset status bit shift")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	cfg := hwmodel.DefaultConfig()
	if *configPath != "" {
		loaded, err := hwmodel.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	chip, err := parseChip(*chipName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := hwmodel.New(cfg)
	p := prm.New(model, prm.Config{
		Base:          cfg.PRMBase,
		Chip:          chip,
		HardresetWait: prm.MaxHardresetWait,
	})

	if err := runHardreset(p, model); err != nil {
		fmt.Fprintf(os.Stderr, "Hardreset sequence failed: %v\n", err)
		os.Exit(1)
	}

	runVPTransaction(p, model)

	if *verbose {
		dumpRegisters(p)
	}
}

// parseChip maps a -chip flag value to a chip generation.
func parseChip(name string) (prm.Chip, error) {
	switch name {
	case "omap2":
		return prm.ChipOMAP2, nil
	case "omap3":
		return prm.ChipOMAP3, nil
	case "omap3630":
		return prm.ChipOMAP3630, nil
	default:
		return prm.ChipUnknown, fmt.Errorf("unknown chip %q", name)
	}
}

// runHardreset asserts and then deasserts one hardreset line on the IVA2
// module, reporting each observable state.
func runHardreset(p *prm.PRM, model *hwmodel.Model) error {
	if *rstShift != *stShift {
		model.MapStatusBit(prm.IVA2Mod, *rstShift, *stShift)
	}

	if err := p.AssertHardreset(prm.IVA2Mod, *rstShift); err != nil {
		return err
	}
	asserted, err := p.IsHardresetAsserted(prm.IVA2Mod, *rstShift)
	if err != nil {
		return err
	}
	fmt.Printf("hardreset line %d asserted: %v\n", *rstShift, asserted)

	err = p.DeassertHardreset(prm.IVA2Mod, *rstShift, *stShift)
	switch {
	case errors.Is(err, prm.ErrAlreadyDeasserted):
		fmt.Printf("hardreset line %d was already deasserted\n", *rstShift)
	case err != nil:
		return err
	default:
		fmt.Printf("hardreset line %d deasserted, completion acknowledged\n", *rstShift)
	}

	return nil
}

// runVPTransaction injects a VP transaction-done event for each rail and
// runs the check/clear round a voltage-scaling driver would.
func runVPTransaction(p *prm.PRM, model *hwmodel.Model) {
	model.RaiseIRQStatus(prm.VP1TxDoneSTMask | prm.VP2TxDoneSTMask)

	for _, rail := range []prm.Rail{prm.RailMPU, prm.RailCore} {
		done := p.VPCheckTxDone(rail)
		fmt.Printf("rail %d VP transaction done: %v\n", rail, done)
		if done {
			p.VPClearTxDone(rail)
			fmt.Printf("rail %d VP transaction acknowledged: done=%v\n",
				rail, p.VPCheckTxDone(rail))
		}
	}

	if p.Chip().HasABB() {
		model.RaiseIRQStatus(prm.ABBTxDoneSTMask)
		fmt.Printf("rail %d ABB transaction done: %v\n",
			prm.RailMPU, p.ABBCheckTxDone(prm.RailMPU))
		p.ABBClearTxDone(prm.RailMPU)
	}
}

// dumpRegisters prints the registers this run touched.
func dumpRegisters(p *prm.PRM) {
	fmt.Printf("RM_RSTCTRL (IVA2): %08X\n", p.ReadModReg(prm.IVA2Mod, prm.RMRstCtrl))
	fmt.Printf("RM_RSTST   (IVA2): %08X\n", p.ReadModReg(prm.IVA2Mod, prm.RMRstST))
	fmt.Printf("PRM_IRQSTATUS_MPU: %08X\n", p.ReadModReg(prm.OCPMod, prm.IRQStatusMPUOffset))
}
