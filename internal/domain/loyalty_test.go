package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForPoints(t *testing.T) {
	cases := []struct {
		points int64
		want   Tier
	}{
		{0, TierBronze},
		{4999, TierBronze},
		{5000, TierSilver},
		{14999, TierSilver},
		{15000, TierGold},
		{49999, TierGold},
		{50000, TierPlatinum},
		{120000, TierPlatinum},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TierForPoints(tc.points), "points=%d", tc.points)
	}
}

func TestNextTier(t *testing.T) {
	assert.Equal(t, TierSilver, NextTier(TierBronze))
	assert.Equal(t, TierGold, NextTier(TierSilver))
	assert.Equal(t, TierPlatinum, NextTier(TierGold))
	assert.Equal(t, Tier(""), NextTier(TierPlatinum))
}

func TestPointsToNextTier(t *testing.T) {
	assert.Equal(t, int64(5000), PointsToNextTier(0))
	assert.Equal(t, int64(1), PointsToNextTier(4999))
	assert.Equal(t, int64(10000), PointsToNextTier(5000))
	assert.Equal(t, int64(35000), PointsToNextTier(15000))
	assert.Equal(t, int64(0), PointsToNextTier(50000))
}

func TestPointsForKind(t *testing.T) {
	assert.Equal(t, int64(900), PointsForKind(BookingCustom))
	assert.Equal(t, int64(1000), PointsForKind(BookingTour))
	assert.Equal(t, int64(300), PointsForKind(BookingHotel))
	assert.Equal(t, int64(300), PointsForKind(BookingFlight))
}
