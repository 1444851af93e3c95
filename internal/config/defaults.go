package config

import (
	_ "embed"
)

//go:embed defaults/minefield.yaml
var defaultMinefieldYAML []byte

// DefaultMinefieldConfig returns the default board configuration.
func DefaultMinefieldConfig() MinefieldConfig {
	return MinefieldConfig{
		DefaultPreset: string(DifficultyBeginner),
		MarkMode:      "three",
		Presets: []Preset{
			{Name: string(DifficultyBeginner), Description: "9x9 with 10 mines", Rows: 9, Cols: 9, Mines: 10},
			{Name: string(DifficultyIntermediate), Description: "16x16 with 40 mines", Rows: 16, Cols: 16, Mines: 40},
			{Name: string(DifficultyExpert), Description: "16x30 with 99 mines", Rows: 16, Cols: 30, Mines: 99},
			{Name: string(DifficultyClassic), Description: "16x30 with 75 mines", Rows: 16, Cols: 30, Mines: 75},
		},
	}
}
