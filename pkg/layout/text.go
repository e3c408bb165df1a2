package layout

import (
	"math"
	"unicode/utf8"
)

// WidthEstimator reports the rendered pixel width of a display label.
//
// The layout engine treats width estimation as an external capability:
// a renderer with real font metrics can supply exact measurements, while
// the default estimator approximates from character counts. Estimates
// must be non-negative and finite for any input string.
type WidthEstimator interface {
	LabelWidth(label string) float64
}

// charWidthEstimator approximates label widths from rune counts using a
// fixed per-character advance, the same model used to size block labels
// when no font metrics are available.
type charWidthEstimator struct {
	cfg Config
}

// NewCharWidthEstimator returns the default width estimator for cfg.
func NewCharWidthEstimator(cfg Config) WidthEstimator {
	return charWidthEstimator{cfg: cfg.normalized()}
}

// LabelWidth returns runes × FontSize × CharWidth plus padding, floored
// at MinLabelWidth. Empty labels get the floor so every node occupies
// visible space.
func (e charWidthEstimator) LabelWidth(label string) float64 {
	n := utf8.RuneCountInString(label)
	w := float64(n)*e.cfg.FontSize*e.cfg.CharWidth + 2*e.cfg.LabelPad
	return math.Max(w, e.cfg.MinLabelWidth)
}

// safeWidth guards against estimators violating their contract: negative
// or non-finite widths are clamped to the configured floor.
func safeWidth(w, floor float64) float64 {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return floor
	}
	return math.Max(w, floor)
}
