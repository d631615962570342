package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/stitchery/stitchery/pkg/units"
)

// configFile is the configuration file name inside the config directory.
const configFile = "config.toml"

// Config holds user preferences loaded from ~/.config/stitchery/config.toml.
// All fields are optional; zero values defer to the pipeline defaults, and
// command-line flags override everything here.
//
// Example:
//
//	format = "svg"
//	cell_size = 16
//
//	[gauges.worsted]
//	stitches = 1.8
//	rows = 2.4
//	tool = 4.5
//	unit = "cm"
type Config struct {
	// Format is the default output format for generate.
	Format string `toml:"format"`

	// CellSize and Padding set the default image geometry.
	CellSize float64 `toml:"cell_size"`
	Padding  float64 `toml:"padding"`

	// Gauges maps preset names to saved gauge measurements, usable with
	// generate --gauge <name>.
	Gauges map[string]GaugePreset `toml:"gauges"`
}

// GaugePreset is a saved gauge measurement.
type GaugePreset struct {
	Stitches float64 `toml:"stitches"`
	Rows     float64 `toml:"rows"`
	Tool     float64 `toml:"tool"`
	Unit     string  `toml:"unit"`
}

// Gauge converts the preset into a validated units.Gauge.
func (p GaugePreset) Gauge() (units.Gauge, error) {
	return units.NewGauge(p.Stitches, p.Rows, p.Tool, units.Unit(p.Unit))
}

// LoadConfig reads the user configuration file. A missing file is not an
// error; the zero Config is returned.
func LoadConfig() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(filepath.Join(dir, configFile))
}

func loadConfigFile(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}
