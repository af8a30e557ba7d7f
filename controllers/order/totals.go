package orderControllers

import (
	"github.com/shopspring/decimal"

	"github.com/diwashkafle/mygadgetnepal/models"
)

// verifyTotal recomputes the order total from the item snapshots with exact
// decimal arithmetic and rejects a declared total that disagrees.
func verifyTotal(items []models.OrderItem, declared float64) error {
	sum := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	if !sum.Equal(decimal.NewFromFloat(declared)) {
		return models.NewValidationError("declared total %s does not match item sum %s",
			decimal.NewFromFloat(declared).String(), sum.String())
	}
	return nil
}
