package wordfall

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wordfall/internal/config"
)

func newTestTarget() *Target {
	return NewTarget(1, "balay", 4, 100, 0, config.DefaultWordfallConfig().Targets)
}

func TestTargetFallingMovesPerTick(t *testing.T) {
	tg := newTestTarget()

	// Movement ignores dt
	tg.Advance(0.001)
	assert.Equal(t, 4.0, tg.Y)
	tg.Advance(0.5)
	assert.Equal(t, 8.0, tg.Y)
	assert.Equal(t, StateFalling, tg.State)
}

func TestTargetClaimAndStrike(t *testing.T) {
	tg := newTestTarget()

	assert.False(t, tg.Strike(), "falling target cannot be struck")
	assert.True(t, tg.Claim())
	assert.False(t, tg.Claim(), "claim is idempotent")
	assert.True(t, tg.Typed())
	assert.Equal(t, StateTyped, tg.State)

	// Typed targets keep falling
	tg.Advance(testDT)
	assert.Equal(t, 4.0, tg.Y)

	require.True(t, tg.Strike())
	assert.False(t, tg.Strike(), "strike is idempotent")
	assert.True(t, tg.Booming)
	assert.Equal(t, StateHit, tg.State)
	assert.Equal(t, 0.0, tg.Phase)
}

func TestTargetExplosionCompletes(t *testing.T) {
	tg := newTestTarget()
	tg.Claim()
	tg.Strike()
	y := tg.Y

	// rate 10 * dt 0.1 = one phase unit per advance
	for i := 1; i <= 5; i++ {
		require.False(t, tg.Advance(0.1), "advance %d", i)
		assert.Equal(t, StateExploding, tg.State)
	}
	assert.True(t, tg.Advance(0.1))
	assert.Equal(t, StateDone, tg.State)
	assert.Equal(t, y, tg.Y, "exploding targets do not move")
	assert.Equal(t, 11, tg.Frame())
}

func TestTargetBoundary(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"inside", 0, false},
		{"touching ground", 600, false},
		{"just past", 600.5, true},
		{"deep", 5000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := newTestTarget()
			tg.Y = tt.y
			assert.Equal(t, tt.want, tg.IsPastBoundary(700))
		})
	}
}

func TestTargetMissAndEscape(t *testing.T) {
	falling := newTestTarget()
	assert.True(t, falling.MarkMissed())
	assert.False(t, falling.MarkMissed())
	assert.False(t, falling.Typed())
	assert.Equal(t, StateDone, falling.State)
	assert.False(t, falling.Claim(), "missed target cannot be claimed")

	typed := newTestTarget()
	typed.Claim()
	assert.False(t, typed.MarkMissed(), "typed target is never a miss")
	assert.True(t, typed.MarkEscaped())
	assert.True(t, typed.Escaped)
	assert.True(t, typed.Typed())
	assert.False(t, typed.Strike(), "escaped target cannot be struck")

	hit := newTestTarget()
	hit.Claim()
	hit.Strike()
	assert.False(t, hit.MarkEscaped())
	assert.False(t, hit.MarkMissed())
}

func TestTargetStateNeverRegresses(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for n := 0; n < 200; n++ {
		tg := newTestTarget()
		prev := tg.State
		for step := 0; step < 60; step++ {
			switch rng.Intn(6) {
			case 0:
				tg.Claim()
			case 1:
				tg.Strike()
			case 2:
				tg.MarkMissed()
			case 3:
				tg.MarkEscaped()
			default:
				tg.Advance(rng.Float64() * 0.3)
			}

			require.GreaterOrEqual(t, int(tg.State), int(prev), "state went from %v to %v", prev, tg.State)
			if prev == StateDone {
				require.Equal(t, StateDone, tg.State)
			}
			prev = tg.State
		}
	}
}
