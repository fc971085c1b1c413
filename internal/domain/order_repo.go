package domain

type ProductRepository interface {
	CreateProduct(product *Product) error
	GetProductsByIDs(productIDs []string) (map[string]*Product, error)
}

type OrderRepository interface {
	// CreateOrder stores the order and, for campaign attributions, adds the
	// order total to the participation revenue and one conversion, in one
	// transaction.
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	// CancelOrder cancels the order and its pending attribution and reverts
	// the participation revenue, in one transaction.
	CancelOrder(orderID string) error
	UpdateAttributionStatus(orderID string, oldStatus, newStatus AttributionStatus) error
	GetCommissionTotals(influencerID string) (*CommissionTotals, error)
}
