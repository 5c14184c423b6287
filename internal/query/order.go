package query

// OrderKey names exactly one ordering column plus direction. The sort
// parameter maps onto one of these; anything unknown falls back to newest
// first.
type OrderKey int

const (
	OrderNewest OrderKey = iota
	OrderPriceAsc
	OrderPriceDesc
	OrderRatingDesc
	OrderBudgetAsc
	OrderBudgetDesc
)

func gigOrder(sort string) OrderKey {
	switch sort {
	case "price_asc":
		return OrderPriceAsc
	case "price_desc":
		return OrderPriceDesc
	case "rating":
		return OrderRatingDesc
	default:
		return OrderNewest
	}
}

func requestOrder(sort string) OrderKey {
	switch sort {
	case "budget_asc":
		return OrderBudgetAsc
	case "budget_desc":
		return OrderBudgetDesc
	default:
		return OrderNewest
	}
}
