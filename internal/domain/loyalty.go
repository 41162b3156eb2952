package domain

// Tier is a loyalty level derived purely from the current point balance.
// There is no grace period: a balance drop downgrades the tier immediately.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

const (
	silverThreshold   = 5000
	goldThreshold     = 15000
	platinumThreshold = 50000
)

// Flat point awards per booking kind. Deliberately not price-proportional.
const (
	PointsCustomPackage = 900
	PointsTourPackage   = 1000
	PointsSingleItem    = 300
)

// PointsForKind returns the flat award for a booking kind. The same schedule
// is used for the clawback on refund.
func PointsForKind(kind BookingKind) int64 {
	switch kind {
	case BookingCustom:
		return PointsCustomPackage
	case BookingTour:
		return PointsTourPackage
	default:
		return PointsSingleItem
	}
}

// TierForPoints maps a balance to its tier.
func TierForPoints(points int64) Tier {
	switch {
	case points >= platinumThreshold:
		return TierPlatinum
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// NextTier returns the tier above t, or "" for Platinum.
func NextTier(t Tier) Tier {
	switch t {
	case TierBronze:
		return TierSilver
	case TierSilver:
		return TierGold
	case TierGold:
		return TierPlatinum
	default:
		return ""
	}
}

// PointsToNextTier returns how many more points are needed to reach the next
// tier, or 0 when already at Platinum.
func PointsToNextTier(points int64) int64 {
	var threshold int64
	switch TierForPoints(points) {
	case TierBronze:
		threshold = silverThreshold
	case TierSilver:
		threshold = goldThreshold
	case TierGold:
		threshold = platinumThreshold
	default:
		return 0
	}

	if diff := threshold - points; diff > 0 {
		return diff
	}

	return 0
}
