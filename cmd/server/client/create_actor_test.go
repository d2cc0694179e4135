package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStats(t *testing.T) {
	stats, err := parseStats("might=4, dexterity=5,awareness=3,reason=6,presence=2,luck=3")
	require.NoError(t, err)
	assert.Equal(t, int32(4), stats.Might.Value)
	assert.Equal(t, int32(5), stats.Dexterity.Value)
	assert.Equal(t, int32(3), stats.Awareness.Value)
	assert.Equal(t, int32(6), stats.Reason.Value)
	assert.Equal(t, int32(2), stats.Presence.Value)
	assert.Equal(t, int32(3), stats.Luck.Value)
}

func TestParseStatsEmpty(t *testing.T) {
	stats, err := parseStats("  ")
	require.NoError(t, err)
	assert.Zero(t, stats.Might.Value)
}

func TestParseStatsErrors(t *testing.T) {
	for _, raw := range []string{"might", "might=x", "charm=3"} {
		t.Run(raw, func(t *testing.T) {
			_, err := parseStats(raw)
			assert.Error(t, err)
		})
	}
}
