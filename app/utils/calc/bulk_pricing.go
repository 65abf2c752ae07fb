package calc

import "github.com/shopspring/decimal"

// Wholesale tier prices for the bulk categories. The tier is selected by the
// combined quantity across every bulk line in the cart, not per line.
var (
	TierPriceSingle = decimal.NewFromFloat(35.00)
	TierPricePair   = decimal.NewFromFloat(30.00)
	TierPriceBulk   = decimal.NewFromFloat(25.00)
)

const (
	tierPairMinQty = 2
	tierBulkMinQty = 5
)

func TierUnitPrice(combinedQty int) decimal.Decimal {
	switch {
	case combinedQty >= tierBulkMinQty:
		return TierPriceBulk
	case combinedQty >= tierPairMinQty:
		return TierPricePair
	default:
		return TierPriceSingle
	}
}
