package hwmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the parameters of the behavioral PRM model.
type Config struct {
	// PRMBase is the base address of the modeled PRM instance.
	PRMBase uint32 `json:"prm_base"`

	// WindowSize is the size in bytes of the PRM register window. Accesses
	// outside the window hit plain backing storage with no side effects.
	WindowSize uint32 `json:"window_size"`

	// ModuleStride is the spacing of per-module register windows. The
	// reset control/status pair repeats at this stride.
	ModuleStride uint32 `json:"module_stride"`

	// ResetLatency is the number of reset-status reads a submodule takes
	// to acknowledge a deassertion. Models the asynchronous completion the
	// driver observes while busy-polling.
	ResetLatency int `json:"reset_latency"`
}

// DefaultConfig returns a Config modeling the OMAP3 PRM instance.
func DefaultConfig() Config {
	return Config{
		PRMBase:      0x48306000, // OMAP3 PRM base on L4-Core
		WindowSize:   0x2000,
		ModuleStride: 0x100,
		ResetLatency: 3,
	}
}

// LoadConfig loads a Config from a JSON file. Missing fields keep their
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse model config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize model config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model config file: %w", err)
	}

	return nil
}

// Validate checks that the Config is internally consistent.
func (c *Config) Validate() error {
	if c.ModuleStride == 0 {
		return fmt.Errorf("module_stride must be > 0")
	}
	if c.WindowSize == 0 {
		return fmt.Errorf("window_size must be > 0")
	}
	if c.ResetLatency < 0 {
		return fmt.Errorf("reset_latency must be >= 0")
	}
	return nil
}
