package kernel

import (
	"strings"

	"freight/internal/pkg/errs"
)

// GoodsCategory classifies what a parcel contains. The set is open: categories
// outside the known list are priced with the default tariff.
type GoodsCategory string

const (
	Food        GoodsCategory = "alimentaire"
	Chemical    GoodsCategory = "chimique"
	Fragile     GoodsCategory = "materiel-fragile"
	Unbreakable GoodsCategory = "materiel-incassable"
)

// NewGoodsCategory trims the input and rejects empty names.
func NewGoodsCategory(s string) (GoodsCategory, error) {
	c := GoodsCategory(strings.TrimSpace(s))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c GoodsCategory) Validate() error {
	if c == "" {
		return errs.NewValueIsRequiredError("goods category")
	}
	return nil
}

// IsKnown reports whether the category has a dedicated tariff.
func (c GoodsCategory) IsKnown() bool {
	switch c {
	case Food, Chemical, Fragile, Unbreakable:
		return true
	default:
		return false
	}
}

func (c GoodsCategory) String() string {
	return string(c)
}
