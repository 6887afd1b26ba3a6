package parcel

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const (
	MinToxicityTier = 1
	MaxToxicityTier = 3
)

// ValidateToxicityTier checks that the tier is present exactly for chemical goods
// and lies in [MinToxicityTier, MaxToxicityTier].
func ValidateToxicityTier(category kernel.GoodsCategory, tier *int) error {
	if category != kernel.Chemical {
		if tier != nil {
			return errs.NewValueIsInvalidError("toxicity tier is only allowed for chemical goods")
		}
		return nil
	}

	if tier == nil {
		return errs.NewValueIsRequiredError("toxicity tier")
	}
	if *tier < MinToxicityTier || *tier > MaxToxicityTier {
		return errs.NewValueIsOutOfRangeError("toxicity tier", *tier, MinToxicityTier, MaxToxicityTier)
	}
	return nil
}
