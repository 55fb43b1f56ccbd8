package main

import (
	"path/filepath"
	"testing"

	"github.com/sheikhrachel/toroidal-gol/utils"
)

func TestApplyOverrides(t *testing.T) {
	o := newCLIOptions()
	o.width = 40
	o.maxGenerations = 0
	o.density = 0
	o.seed = "-7"
	o.pattern = "glider"
	o.noColor = true
	o.noRestart = true

	config := utils.DefaultConfig()
	config.PatternFile = "ignored.cells"
	if err := o.apply(&config); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if config.Width != 40 || config.Height != utils.DefaultConfig().Height {
		t.Fatalf("size = %dx%d", config.Width, config.Height)
	}
	if config.MaxGenerations != 0 || config.RandomDensity != 0 || config.Seed != -7 {
		t.Fatalf("config = %+v", config)
	}
	if config.Pattern != "glider" || config.PatternFile != "" || config.Colors || config.AutoRestart {
		t.Fatalf("config = %+v", config)
	}
}

func TestApplyRejectsBadInput(t *testing.T) {
	o := newCLIOptions()
	o.seed = "seven"
	config := utils.DefaultConfig()
	if err := o.apply(&config); err == nil {
		t.Fatal("non-numeric seed accepted")
	}

	o = newCLIOptions()
	o.density = 2
	config = utils.DefaultConfig()
	if err := o.apply(&config); err == nil {
		t.Fatal("density 2 accepted")
	}

	o = newCLIOptions()
	o.workers = 0
	config = utils.DefaultConfig()
	if err := o.apply(&config); err == nil {
		t.Fatal("zero workers accepted")
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	o := newCLIOptions()
	config, err := loadConfig(o)
	if err != nil {
		t.Fatalf("loadConfig without config.json: %v", err)
	}
	if config != utils.DefaultConfig() {
		t.Fatalf("config = %+v", config)
	}

	o.configPath = filepath.Join(t.TempDir(), "missing.json")
	if _, err = loadConfig(o); err == nil {
		t.Fatal("explicit missing config file accepted")
	}
}
