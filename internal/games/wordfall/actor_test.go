package wordfall

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
)

func TestActorQueueReleasesInOrder(t *testing.T) {
	a := NewActor(config.DefaultWordfallConfig().Actor)
	a.Claimed(1)
	a.Claimed(2)
	a.Claimed(3)
	assert.Equal(t, 3, a.Pending())

	// rate 10 * dt 0.1 = one frame per call, four frames per wind-up
	var released []uint64
	for i := 0; i < 12; i++ {
		got := a.Advance(0.1)
		assert.LessOrEqual(t, len(got), 1, "one launch per wind-up")
		released = append(released, got...)
		if (i+1)%4 != 0 {
			assert.Empty(t, got, "call %d", i)
		}
	}

	assert.Equal(t, []uint64{1, 2, 3}, released)
	assert.False(t, a.Winding())
	assert.Equal(t, 0, a.Pending())
	assert.Nil(t, a.Advance(0.1))
}

func TestActorFrame(t *testing.T) {
	a := NewActor(config.DefaultWordfallConfig().Actor)
	assert.Equal(t, 0, a.Frame())

	a.Claimed(7)
	a.Advance(0.1)
	a.Advance(0.1)
	assert.Equal(t, 2, a.Frame())
	assert.True(t, a.Winding())
}

func TestActorMuzzle(t *testing.T) {
	a := NewActor(config.DefaultWordfallConfig().Actor)
	assert.Equal(t, core.Vec2{X: 179, Y: 569}, a.Muzzle())
}

func TestActorReset(t *testing.T) {
	a := NewActor(config.DefaultWordfallConfig().Actor)
	a.Claimed(1)
	a.Claimed(2)
	a.Advance(0.1)

	a.Reset()
	assert.False(t, a.Winding())
	assert.Equal(t, 0, a.Pending())
	assert.Nil(t, a.Advance(1))
}
