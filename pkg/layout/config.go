package layout

import (
	"math"

	"github.com/BurntSushi/toml"

	"github.com/biglinehq/bigline/pkg/errors"
)

// Config holds the tuning constants for a layout pass.
//
// All values are in pixels unless noted. The zero value is not usable;
// start from [DefaultConfig] or load a TOML profile with [LoadConfig].
type Config struct {
	// CanvasWidth is the horizontal extent the composition is centered on.
	CanvasWidth float64 `toml:"canvas_width" json:"canvas_width"`

	// CanvasHeight is the minimum vertical extent reported on the result.
	// The actual height grows with the deepest generation.
	CanvasHeight float64 `toml:"canvas_height" json:"canvas_height"`

	// LayerHeight is the vertical distance between consecutive generations.
	LayerHeight float64 `toml:"layer_height" json:"layer_height"`

	// TopMargin offsets generation zero from the canvas top.
	TopMargin float64 `toml:"top_margin" json:"top_margin"`

	// MinGap is the minimum horizontal gap between adjacent leaf labels.
	MinGap float64 `toml:"min_gap" json:"min_gap"`

	// FamilyGap separates adjacent family blocks.
	FamilyGap float64 `toml:"family_gap" json:"family_gap"`

	// FontSize and CharWidth drive the approximate label width model:
	// width ≈ runes × FontSize × CharWidth + 2 × LabelPad.
	FontSize  float64 `toml:"font_size" json:"font_size"`
	CharWidth float64 `toml:"char_width" json:"char_width"`

	// LabelPad is the horizontal padding on each side of a label.
	LabelPad float64 `toml:"label_pad" json:"label_pad"`

	// MinLabelWidth is the estimator's floor, applied to empty or very
	// short labels so every node occupies visible space.
	MinLabelWidth float64 `toml:"min_label_width" json:"min_label_width"`
}

// DefaultConfig returns the standard layout tuning.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:   1400,
		CanvasHeight:  900,
		LayerHeight:   110,
		TopMargin:     60,
		MinGap:        24,
		FamilyGap:     80,
		FontSize:      14,
		CharWidth:     0.55,
		LabelPad:      8,
		MinLabelWidth: 40,
	}
}

// LoadConfig reads a TOML profile and overlays it on the defaults.
// Keys absent from the file keep their default values. Non-positive or
// non-finite values are reset to defaults rather than propagated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load layout config %s", path)
	}
	return cfg.normalized(), nil
}

// normalized replaces degenerate values with their defaults so downstream
// arithmetic never produces non-finite coordinates.
func (c Config) normalized() Config {
	def := DefaultConfig()
	fix := func(v, fallback float64) float64 {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return v
	}
	c.CanvasWidth = fix(c.CanvasWidth, def.CanvasWidth)
	c.CanvasHeight = fix(c.CanvasHeight, def.CanvasHeight)
	c.LayerHeight = fix(c.LayerHeight, def.LayerHeight)
	c.TopMargin = fix(c.TopMargin, def.TopMargin)
	c.MinGap = fix(c.MinGap, def.MinGap)
	c.FamilyGap = fix(c.FamilyGap, def.FamilyGap)
	c.FontSize = fix(c.FontSize, def.FontSize)
	c.CharWidth = fix(c.CharWidth, def.CharWidth)
	c.LabelPad = fix(c.LabelPad, def.LabelPad)
	c.MinLabelWidth = fix(c.MinLabelWidth, def.MinLabelWidth)
	return c
}
