package domain

type Role string

const (
	RoleBrand      Role = "brand"
	RoleInfluencer Role = "influencer"
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
)

// Actor is the authenticated caller. It is resolved once per request and
// passed explicitly into every usecase.
type Actor struct {
	ID        string
	Role      Role
	RequestID string
}

func (a Actor) Is(role Role) bool {
	return a.ID != "" && a.Role == role
}
