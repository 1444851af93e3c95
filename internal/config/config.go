// Package config provides YAML-based board configuration loading and
// difficulty presets for the minefield.
package config

// MinefieldConfig contains all board configuration.
type MinefieldConfig struct {
	DefaultPreset string   `yaml:"default_preset"`
	MarkMode      string   `yaml:"mark_mode"` // "three" or "two"
	Presets       []Preset `yaml:"presets"`
}

// Preset is a named board size.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	Mines       int    `yaml:"mines"`
}

// Overrides replace individual preset fields; zero values keep the preset's.
type Overrides struct {
	Rows  int
	Cols  int
	Mines int
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.Rows == 0 && o.Cols == 0 && o.Mines == 0
}
