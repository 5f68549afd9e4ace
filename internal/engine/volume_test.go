package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/CubePack/internal/model"
)

func TestVolume_StartsEmpty(t *testing.T) {
	var v Volume

	assert.Zero(t, v.NumFilled())
	assert.False(t, v.IsFilled())
	for x := 0; x < model.CubeEdge; x++ {
		for y := 0; y < model.CubeEdge; y++ {
			for z := 0; z < model.CubeEdge; z++ {
				assert.False(t, v.Occupied(model.Cell{X: x, Y: y, Z: z}))
			}
		}
	}
}

func TestValidate_OutOfBounds(t *testing.T) {
	var v Volume

	tests := []struct {
		name    string
		offsets []model.Cell
		anchor  model.Cell
	}{
		{"negative x", []model.Cell{{X: -1, Y: 0, Z: 0}}, model.Cell{X: 0, Y: 0, Z: 0}},
		{"negative y", []model.Cell{{X: 0, Y: -1, Z: 0}}, model.Cell{X: 0, Y: 0, Z: 0}},
		{"negative z", []model.Cell{{X: 0, Y: 0, Z: -1}}, model.Cell{X: 0, Y: 0, Z: 0}},
		{"past far corner", []model.Cell{{X: 1, Y: 0, Z: 0}}, model.Cell{X: 2, Y: 2, Z: 2}},
		{"bar overhangs", []model.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}, model.Cell{X: 1, Y: 0, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.offsets, tt.anchor)
			assert.ErrorIs(t, err, ErrOutOfBounds)
		})
	}
}

func TestValidate_Collision(t *testing.T) {
	var v Volume
	bar := []model.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}

	require.NoError(t, v.Place(bar, model.Cell{X: 0, Y: 0, Z: 0}))

	err := v.Validate([]model.Cell{{X: 0, Y: 0, Z: 0}}, model.Cell{X: 1, Y: 0, Z: 0})
	assert.ErrorIs(t, err, ErrCollision)

	// A spot next to the bar is still fine.
	assert.NoError(t, v.Validate([]model.Cell{{X: 0, Y: 0, Z: 0}}, model.Cell{X: 0, Y: 1, Z: 0}))
}

func TestValidate_IsPure(t *testing.T) {
	var v Volume
	before := v

	_ = v.Validate([]model.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, model.Cell{X: 1, Y: 1, Z: 1})
	_ = v.Validate([]model.Cell{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 0}}, model.Cell{X: 0, Y: 0, Z: 0})

	assert.Equal(t, before, v, "Validate must never modify occupancy")
}

func TestPlace_FailedAttemptLeavesVolumeUnchanged(t *testing.T) {
	var v Volume
	require.NoError(t, v.Place([]model.Cell{{X: 0, Y: 0, Z: 0}}, model.Cell{X: 2, Y: 0, Z: 0}))
	before := v

	// First two cells fit, the third collides: nothing may be marked.
	bar := []model.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}}
	err := v.Place(bar, model.Cell{X: 0, Y: 0, Z: 0})
	require.ErrorIs(t, err, ErrCollision)
	assert.Equal(t, before, v)

	// Same for out-of-bounds failures after in-bounds cells.
	err = v.Place(bar, model.Cell{X: 1, Y: 1, Z: 1})
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, before, v)
}

func TestPlace_MarksAllCells(t *testing.T) {
	var v Volume
	offsets := []model.Cell{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1}}
	anchor := model.Cell{X: 1, Y: 0, Z: 1}

	require.NoError(t, v.Place(offsets, anchor))

	assert.Equal(t, len(offsets), v.NumFilled())
	for _, off := range offsets {
		assert.True(t, v.Occupied(anchor.Add(off)))
	}
}

func TestIsFilled_After27Cells(t *testing.T) {
	var v Volume

	cell := []model.Cell{{X: 0, Y: 0, Z: 0}}
	n := 0
	for x := 0; x < model.CubeEdge; x++ {
		for y := 0; y < model.CubeEdge; y++ {
			for z := 0; z < model.CubeEdge; z++ {
				assert.False(t, v.IsFilled())
				require.NoError(t, v.Place(cell, model.Cell{X: x, Y: y, Z: z}))
				n++
				assert.Equal(t, n, v.NumFilled())
			}
		}
	}

	assert.True(t, v.IsFilled())
	assert.Equal(t, model.CubeCells, v.NumFilled())
}

func TestVolume_CopyIsIndependent(t *testing.T) {
	var v Volume
	require.NoError(t, v.Place([]model.Cell{{X: 0, Y: 0, Z: 0}}, model.Cell{X: 1, Y: 1, Z: 1}))

	clone := v
	require.NoError(t, clone.Place([]model.Cell{{X: 0, Y: 0, Z: 0}}, model.Cell{X: 0, Y: 0, Z: 0}))

	assert.Equal(t, 1, v.NumFilled(), "placing into a copy must not mark the original")
	assert.Equal(t, 2, clone.NumFilled())
}
