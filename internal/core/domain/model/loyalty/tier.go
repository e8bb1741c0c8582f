package loyalty

import (
	"fmt"

	"agromarket/internal/pkg/errs"
)

// Tier is a loyalty level derived from the lifetime points an account has
// earned. Spending points never demotes an account.
type Tier int

const (
	TierUnknown Tier = iota
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
)

// Lifetime point thresholds at which each tier is reached.
const (
	silverThreshold   = 500
	goldThreshold     = 2000
	platinumThreshold = 5000
)

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierUnknown:  "unknown",
		TierBronze:   "bronze",
		TierSilver:   "silver",
		TierGold:     "gold",
		TierPlatinum: "platinum",
	}
}

func getValidTierStrings() map[Tier]string {
	//nolint:exhaustive // TierUnknown is intentionally excluded as it's invalid
	return map[Tier]string{
		TierBronze:   "bronze",
		TierSilver:   "silver",
		TierGold:     "gold",
		TierPlatinum: "platinum",
	}
}

// TierFor returns the tier an account with the given lifetime points holds.
func TierFor(totalEarned int64) Tier {
	switch {
	case totalEarned >= platinumThreshold:
		return TierPlatinum
	case totalEarned >= goldThreshold:
		return TierGold
	case totalEarned >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// ParseTier converts the wire representation of a tier into a Tier.
func ParseTier(s string) (Tier, error) {
	for tier, str := range getValidTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"tier is invalid",
		fmt.Errorf("%q is not a valid tier", s),
	)
}

// Validate checks if the Tier value is valid.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the wire name of the tier.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}
