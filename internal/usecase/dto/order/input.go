package orderdto

type CreateProductInput struct {
	Name  string
	Price float64
}

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type PlaceOrderInput struct {
	Items        []OrderItemInput
	ReferralCode string
}

type RegisterInfluencerInput struct {
	Name           string
	Email          string
	Followers      int64
	Channels       []string
	CommissionRate float64
}
