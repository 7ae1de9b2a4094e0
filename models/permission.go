package models

// Roles
const (
	RoleOwner   = "owner"
	RoleFinance = "finance"
	RoleUser    = "user"
)

// PermissionSet is the named capability set stored per username.
// The owner role holds every capability implicitly.
type PermissionSet struct {
	CanEditOrder      bool `json:"canEditOrder"`
	CanDeleteOrder    bool `json:"canDeleteOrder"`
	CanEditFinancials bool `json:"canEditFinancials"`
}

// Actor is the request-scoped caller identity, passed explicitly into every
// service operation instead of living in ambient session state.
type Actor struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}
