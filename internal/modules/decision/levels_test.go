package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moreshwar/stocky/internal/modules/scoring"
)

func TestCalculateLevels_HeldWithPorter(t *testing.T) {
	porter := &scoring.PorterScore{Total: 90}
	levels := CalculateLevels(100, 80, porter, true)

	assert.Equal(t, 85, levels.Edge)
	require.NotNil(t, levels.Target)
	require.NotNil(t, levels.StopLoss)
	assert.Nil(t, levels.Entry)

	assert.Equal(t, 185.0, *levels.Target)
	assert.Equal(t, 85.0, *levels.StopLoss)
	assert.Greater(t, *levels.Target, 100.0)
	assert.Less(t, *levels.StopLoss, 100.0)
}

func TestCalculateLevels_UnheldUsesEntry(t *testing.T) {
	levels := CalculateLevels(100, 70, nil, false)

	assert.Equal(t, 70, levels.Edge)
	require.NotNil(t, levels.Entry)
	assert.Nil(t, levels.Target)
	assert.Nil(t, levels.StopLoss)
	assert.Equal(t, 70.0, *levels.Entry)
}

func TestCalculateLevels_EdgeAveragesWithPorter(t *testing.T) {
	porter := &scoring.PorterScore{Total: 61}
	levels := CalculateLevels(100, 70, porter, false)
	// round(65.5) = 66
	assert.Equal(t, 66, levels.Edge)
}

func TestCalculateLevels_DerivedPricesFloorAtZero(t *testing.T) {
	// A cheap asset with a thin edge would otherwise yield negative prices.
	levels := CalculateLevels(10, 20, nil, false)
	require.NotNil(t, levels.Entry)
	assert.Equal(t, 0.0, *levels.Entry)

	held := CalculateLevels(10, 20, nil, true)
	require.NotNil(t, held.StopLoss)
	assert.Equal(t, 0.0, *held.StopLoss)
	assert.Equal(t, 30.0, *held.Target)
}
