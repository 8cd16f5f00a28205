package entity

import "github.com/google/uuid"

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID       uuid.UUID
	Email        string
	Role         Role
	SellerStatus SellerStatus
}

// Area is a class of resources guarded by the same access rule.
type Area string

const (
	// AreaLogin is never guarded; it is where unauthenticated callers are sent.
	AreaLogin Area = "login"
	// AreaAdmin is the only area an admin may enter.
	AreaAdmin Area = "admin"
	// AreaSeller needs an approved seller.
	AreaSeller Area = "seller"
	// AreaBuyer admits buyers and approved sellers.
	AreaBuyer Area = "buyer"
)

// String returns the string representation of the Area.
func (a Area) String() string {
	return string(a)
}

// Decision is the outcome of an access check. Redirect is set when Allowed is false.
type Decision struct {
	Allowed  bool
	Redirect Area
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(to Area) Decision {
	return Decision{Redirect: to}
}

// Decide resolves whether session may enter area. Rules are evaluated in order:
// no session goes to login, admins are confined to the admin area, sellers need
// an approved status, buyers may use the buyer area, everything else falls back
// to the buyer area.
func Decide(session *Session, area Area) Decision {
	if session == nil {
		return redirect(AreaLogin)
	}

	switch session.Role {
	case RoleAdmin:
		if area == AreaAdmin {
			return allow()
		}

		return redirect(AreaAdmin)
	case RoleSeller:
		if area == AreaSeller || area == AreaBuyer {
			if session.SellerStatus == SellerStatusApproved {
				return allow()
			}

			return redirect(AreaBuyer)
		}
	case RoleBuyer:
		if area == AreaBuyer {
			return allow()
		}
	}

	return redirect(AreaBuyer)
}
