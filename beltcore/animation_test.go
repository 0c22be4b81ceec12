package beltcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenFramesAdvanceOneCell(t *testing.T) {
	anim := NewAnimation(10, Loop)

	for i := 0; i < 9; i++ {
		anim.AdvanceFrame(40, 4)
		require.Equal(t, 0, anim.Position)
		require.Equal(t, i+1, anim.FrameCounter)
	}
	anim.AdvanceFrame(40, 4)

	assert.Equal(t, 1, anim.Position)
	assert.Equal(t, 0, anim.FrameCounter)
}

func TestLoopResetsAtEndOfBelt(t *testing.T) {
	const track, disk = 12, 4
	anim := NewAnimation(2, Loop)

	for anim.Position < track-disk {
		anim.AdvanceFrame(track, disk)
	}
	require.Equal(t, track-disk, anim.Position)
	assert.True(t, anim.AtEnd(track, disk))
	assert.Equal(t, 1.0, anim.Progress(track, disk))

	anim.AdvanceFrame(track, disk)
	assert.Equal(t, 0, anim.Position)
	assert.False(t, anim.AtEnd(track, disk))
}

func TestInvariantsHoldOverManyFrames(t *testing.T) {
	const track, disk = 30, 6
	for _, policy := range []Policy{Loop, Hold} {
		anim := NewAnimation(3, policy)
		for i := 0; i < 1000; i++ {
			anim.AdvanceFrame(track, disk)
			require.GreaterOrEqual(t, anim.Position, 0)
			require.LessOrEqual(t, anim.Position, track)
			require.GreaterOrEqual(t, anim.FrameCounter, 0)
			require.LessOrEqual(t, anim.FrameCounter, anim.Speed)
		}
	}
}

func TestHoldParksAtEnd(t *testing.T) {
	const track, disk = 8, 2
	anim := NewAnimation(1, Hold)

	for i := 0; i < 50; i++ {
		anim.AdvanceFrame(track, disk)
	}
	assert.Equal(t, track-disk, anim.Position)

	anim.AdvanceFrame(5, disk)
	assert.Equal(t, 3, anim.Position)
}

func TestDiskWiderThanTrackStaysAtOrigin(t *testing.T) {
	anim := NewAnimation(1, Loop)
	for i := 0; i < 5; i++ {
		anim.AdvanceFrame(3, 6)
	}
	assert.Equal(t, 0, anim.Position)
	assert.Equal(t, 0.0, anim.Progress(3, 6))
}

func TestSpeedIsNormalised(t *testing.T) {
	for _, speed := range []int{0, -3} {
		created := NewAnimation(speed, Loop)
		assert.Equal(t, 1, created.Speed)
		created.AdvanceFrame(10, 2)
		assert.Equal(t, 1, created.Position, "speed %d steps every frame", speed)
	}
	assert.Equal(t, DefaultSpeed, NewAnimation(DefaultSpeed, Loop).Speed)

	anim := &Animation{Speed: -4}
	anim.AdvanceFrame(10, 2)
	assert.Equal(t, 1, anim.Speed)
	assert.Equal(t, 1, anim.Position)
}

func TestResetAndParsePolicy(t *testing.T) {
	anim := NewAnimation(2, Loop)
	for i := 0; i < 7; i++ {
		anim.AdvanceFrame(20, 2)
	}
	anim.Reset()
	assert.Zero(t, anim.Position)
	assert.Zero(t, anim.FrameCounter)

	policy, err := ParsePolicy("HOLD")
	require.NoError(t, err)
	assert.Equal(t, Hold, policy)

	_, err = ParsePolicy("bounce")
	assert.Error(t, err)
}
