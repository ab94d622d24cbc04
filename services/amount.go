package services

import (
	"github.com/asha-tailors/tailorshop-api/models"
)

// ItemAmount is the minimal shape the amount calculator needs from a line item.
type ItemAmount struct {
	Quantity int
	Price    int
}

// ComputeTotal sums quantity*price over all items. An empty item set yields 0;
// whether zero items are acceptable is the caller's decision, not ours.
func ComputeTotal(items []ItemAmount) int {
	total := 0
	for _, item := range items {
		total += item.Quantity * item.Price
	}
	return total
}

// ComputeRemainingDue returns total - advance. The result may be negative
// when the customer has overpaid; callers display it as-is.
func ComputeRemainingDue(total, advance int) int {
	return total - advance
}

// DeriveStatus picks the initial status for a newly created order: PAID when
// the advance already covers the total, PENDING otherwise. This is a
// creation-time convenience only and is never re-applied on later edits.
func DeriveStatus(advance, total int) string {
	if advance >= total {
		return models.StatusPaid
	}
	return models.StatusPending
}
