package wordfall

import (
	"math"
	"math/rand"
	"strings"

	"github.com/vovakirdan/wordfall/internal/config"
)

// TextMeasurer reports the rendered width of a word in field units.
type TextMeasurer interface {
	Measure(text string) float64
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string) float64

// Measure calls f(text).
func (f MeasureFunc) Measure(text string) float64 {
	return f(text)
}

// WordSupplier draws one word. It returns false when no words are available.
type WordSupplier func(rng *rand.Rand) (string, bool)

// Placement is one accepted target position for a level.
type Placement struct {
	Text string
	X, Y float64
}

// SpawnPlanner chooses non-overlapping horizontal positions for new targets.
type SpawnPlanner struct {
	cfg     config.SpawnConfig
	measure TextMeasurer
}

// NewSpawnPlanner creates a planner measuring words with m.
func NewSpawnPlanner(cfg config.SpawnConfig, m TextMeasurer) *SpawnPlanner {
	return &SpawnPlanner{cfg: cfg, measure: m}
}

// SetMeasurer replaces the text measurer, e.g. after a terminal resize.
func (p *SpawnPlanner) SetMeasurer(m TextMeasurer) {
	p.measure = m
}

// interval is a horizontal span already taken, padded by MinSpacing.
type interval struct {
	left, right float64
}

// Plan places up to count words. Words wider than the target (minus the
// text margin) are rejected. Each accepted interval, padded on both sides,
// is disjoint from every other. Gives up after OuterRetries consecutive
// failures and returns what it has.
func (p *SpawnPlanner) Plan(supply WordSupplier, count int, targetW, targetH, fieldW float64, rng *rand.Rand) []Placement {
	if count <= 0 || supply == nil {
		return nil
	}

	minX := p.cfg.LeftPad
	maxX := fieldW - targetW - p.cfg.RightPad
	if maxX < minX {
		return nil
	}
	span := int(math.Floor(maxX-minX)) + 1

	placements := make([]Placement, 0, count)
	occupied := make([]interval, 0, count)

	attempts := 0
	for len(placements) < count && attempts < p.cfg.OuterRetries {
		text, ok := supply(rng)
		if !ok {
			return placements
		}

		if p.measure != nil && p.measure.Measure(strings.ToUpper(text)) > targetW-p.cfg.TextMargin {
			attempts++
			continue
		}

		var candidate interval
		var x float64
		placed := false
		for i := 0; i < p.cfg.InnerRetries; i++ {
			x = minX + float64(rng.Intn(span))
			candidate = interval{left: x - p.cfg.MinSpacing, right: x + targetW + p.cfg.MinSpacing}
			if !overlapsAny(candidate, occupied) {
				placed = true
				break
			}
		}

		if !placed {
			attempts++
			continue
		}

		occupied = append(occupied, candidate)
		offset := p.cfg.MinOffset + rng.Intn(p.cfg.MaxOffset-p.cfg.MinOffset+1)
		placements = append(placements, Placement{
			Text: text,
			X:    x,
			Y:    -targetH - float64(offset),
		})
		attempts = 0
	}

	return placements
}

// overlapsAny reports whether c touches or overlaps any taken interval.
func overlapsAny(c interval, taken []interval) bool {
	for _, t := range taken {
		if !(c.right < t.left || c.left > t.right) {
			return true
		}
	}
	return false
}
