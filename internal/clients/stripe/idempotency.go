package stripe

import (
	"fmt"
	"strings"
)

// Idempotency keys are derived from business identity so that retrying the
// same logical request returns the object created the first time.

func ProductCreateKey(localProductID string) string {
	return fmt.Sprintf("product-create-%s", localProductID)
}

// PriceCreateKey includes amount and currency: a new amount is a new price.
func PriceCreateKey(stripeProductID string, unitAmount int64, currency string) string {
	return fmt.Sprintf("price-create-%s-%d-%s", stripeProductID, unitAmount, strings.ToLower(currency))
}

func PaymentLinkKey(priceID string) string {
	return fmt.Sprintf("payment-link-%s", priceID)
}
