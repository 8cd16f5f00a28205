// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleBuyer is the default role given at registration.
	RoleBuyer Role = "buyer"
	// RoleSeller is granted only by an admin approving a seller application.
	RoleSeller Role = "seller"
	// RoleAdmin accounts are provisioned out-of-band.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// SellerStatus tracks a user's seller application. The zero value means no application.
type SellerStatus string

const (
	// SellerStatusNone means the account never applied. Admins always have it.
	SellerStatusNone SellerStatus = ""
	// SellerStatusPending awaits an admin review.
	SellerStatusPending SellerStatus = "pending"
	// SellerStatusApproved always accompanies RoleSeller.
	SellerStatusApproved SellerStatus = "approved"
	// SellerStatusRejected may apply again.
	SellerStatusRejected SellerStatus = "rejected"
)

// String returns the string representation of the SellerStatus.
func (s SellerStatus) String() string {
	return string(s)
}

// IsValid checks if the SellerStatus is a valid value.
func (s SellerStatus) IsValid() bool {
	switch s {
	case SellerStatusNone, SellerStatusPending, SellerStatusApproved, SellerStatusRejected:
		return true
	default:
		return false
	}
}

// ParseSellerStatus converts a stored or requested value, rejecting unknown ones.
func ParseSellerStatus(s string) (SellerStatus, bool) {
	status := SellerStatus(s)

	return status, status.IsValid()
}
