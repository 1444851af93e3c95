package config

import (
	"fmt"

	"github.com/vovakirdan/minefield/internal/minefield"
)

// Difficulty names a built-in preset.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
	DifficultyClassic      Difficulty = "classic"
)

// Density returns the share of cells holding a mine.
func (p Preset) Density() float64 {
	cells := p.Rows * p.Cols
	if cells <= 0 {
		return 0
	}
	return float64(p.Mines) / float64(cells)
}

// Validate checks that the preset describes a playable board.
func (p Preset) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("preset %q: rows and cols must be positive, got %dx%d", p.Name, p.Rows, p.Cols)
	}
	if p.Mines < 0 || p.Mines >= p.Rows*p.Cols {
		return fmt.Errorf("preset %q: mines must be in [0, %d), got %d", p.Name, p.Rows*p.Cols, p.Mines)
	}
	return nil
}

// Preset returns the preset with the given name.
// An empty name selects DefaultPreset.
func (c MinefieldConfig) Preset(name string) (Preset, error) {
	if name == "" {
		name = c.DefaultPreset
	}
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}

// Validate checks every preset, the default preset and the mark mode.
func (c MinefieldConfig) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("no presets defined")
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("preset %q defined twice", p.Name)
		}
		seen[p.Name] = true
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if _, err := c.Preset(""); err != nil {
		return fmt.Errorf("default preset: %w", err)
	}
	if _, err := minefield.ParseMarkMode(c.MarkMode); err != nil {
		return err
	}
	return nil
}

// Mode returns the parsed mark mode.
func (c MinefieldConfig) Mode() (minefield.MarkMode, error) {
	return minefield.ParseMarkMode(c.MarkMode)
}

// ApplyOverrides returns p with every non-zero override applied.
// The result is validated because overrides can make a preset unplayable.
func ApplyOverrides(p Preset, o Overrides) (Preset, error) {
	if o.IsZero() {
		return p, nil
	}
	if o.Rows != 0 {
		p.Rows = o.Rows
	}
	if o.Cols != 0 {
		p.Cols = o.Cols
	}
	if o.Mines != 0 {
		p.Mines = o.Mines
	}
	p.Name = "custom"
	p.Description = fmt.Sprintf("%dx%d with %d mines", p.Rows, p.Cols, p.Mines)
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
