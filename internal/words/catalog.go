// Package words provides the word catalog that feeds falling targets:
// tier partitioning by length, random draws, and word list loading.
package words

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// Tier is a difficulty bucket of the catalog.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard

	tierCount = 3
)

// AllTiers lists the tiers in ascending difficulty.
var AllTiers = []Tier{TierEasy, TierMedium, TierHard}

// String returns the tier name used in configs and on the command line.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name to a Tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return TierEasy, nil
	case "medium":
		return TierMedium, nil
	case "hard":
		return TierHard, nil
	default:
		return TierEasy, fmt.Errorf("words: unknown tier %q", s)
	}
}

// Range is an inclusive word length range in runes.
type Range struct {
	Min, Max int
}

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Tiers holds the length range of each tier.
type Tiers struct {
	Easy, Medium, Hard Range
}

// DefaultTiers returns the standard 4-6 / 7-12 / 13-18 partition.
func DefaultTiers() Tiers {
	return Tiers{
		Easy:   Range{Min: 4, Max: 6},
		Medium: Range{Min: 7, Max: 12},
		Hard:   Range{Min: 13, Max: 18},
	}
}

// For returns the range of a tier.
func (t Tiers) For(tier Tier) Range {
	switch tier {
	case TierMedium:
		return t.Medium
	case TierHard:
		return t.Hard
	default:
		return t.Easy
	}
}

// Catalog partitions a word collection into tiers.
// Words whose length matches no tier are dropped.
type Catalog struct {
	tiers   Tiers
	buckets [tierCount][]string
}

// NewCatalog builds a catalog from words in source order.
func NewCatalog(list []string, tiers Tiers) *Catalog {
	c := &Catalog{tiers: tiers}
	for _, w := range list {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		n := utf8.RuneCountInString(w)
		for _, tier := range AllTiers {
			if tiers.For(tier).Contains(n) {
				c.buckets[tier] = append(c.buckets[tier], w)
				break
			}
		}
	}
	return c
}

// Draw returns a uniformly random lowercased word from the tier.
// Returns false when the tier is empty.
func (c *Catalog) Draw(tier Tier, rng *rand.Rand) (string, bool) {
	bucket := c.bucket(tier)
	if len(bucket) == 0 {
		return "", false
	}
	return strings.ToLower(bucket[rng.Intn(len(bucket))]), true
}

// Len returns the number of words in a tier.
func (c *Catalog) Len(tier Tier) int {
	return len(c.bucket(tier))
}

// Size returns the total number of words across all tiers.
func (c *Catalog) Size() int {
	n := 0
	for _, b := range c.buckets {
		n += len(b)
	}
	return n
}

// Words returns a copy of the words in a tier.
func (c *Catalog) Words(tier Tier) []string {
	return append([]string(nil), c.bucket(tier)...)
}

// Counts returns the word count per tier, indexed by Tier.
func (c *Catalog) Counts() [3]int {
	var counts [3]int
	for i, b := range c.buckets {
		counts[i] = len(b)
	}
	return counts
}

func (c *Catalog) bucket(tier Tier) []string {
	if tier < 0 || int(tier) >= tierCount {
		return nil
	}
	return c.buckets[tier]
}
