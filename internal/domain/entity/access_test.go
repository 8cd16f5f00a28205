package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	session := func(role Role, status SellerStatus) *Session {
		return &Session{UserID: uuid.New(), Role: role, SellerStatus: status}
	}

	tests := []struct {
		name    string
		session *Session
		area    Area
		want    Decision
	}{
		{"no session goes to login", nil, AreaBuyer, Decision{Redirect: AreaLogin}},
		{"no session on admin area goes to login", nil, AreaAdmin, Decision{Redirect: AreaLogin}},
		{"admin allowed in admin area", session(RoleAdmin, SellerStatusNone), AreaAdmin, Decision{Allowed: true}},
		{"admin confined away from buyer area", session(RoleAdmin, SellerStatusNone), AreaBuyer, Decision{Redirect: AreaAdmin}},
		{"admin confined away from seller area", session(RoleAdmin, SellerStatusNone), AreaSeller, Decision{Redirect: AreaAdmin}},
		{"approved seller in seller area", session(RoleSeller, SellerStatusApproved), AreaSeller, Decision{Allowed: true}},
		{"approved seller in buyer area", session(RoleSeller, SellerStatusApproved), AreaBuyer, Decision{Allowed: true}},
		{"pending seller role denied seller area", session(RoleSeller, SellerStatusPending), AreaSeller, Decision{Redirect: AreaBuyer}},
		{"unapproved seller role denied buyer area", session(RoleSeller, SellerStatusNone), AreaBuyer, Decision{Redirect: AreaBuyer}},
		{"seller denied admin area", session(RoleSeller, SellerStatusApproved), AreaAdmin, Decision{Redirect: AreaBuyer}},
		{"buyer allowed in buyer area", session(RoleBuyer, SellerStatusNone), AreaBuyer, Decision{Allowed: true}},
		{"pending buyer allowed in buyer area", session(RoleBuyer, SellerStatusPending), AreaBuyer, Decision{Allowed: true}},
		{"rejected buyer allowed in buyer area", session(RoleBuyer, SellerStatusRejected), AreaBuyer, Decision{Allowed: true}},
		{"pending buyer denied seller area", session(RoleBuyer, SellerStatusPending), AreaSeller, Decision{Redirect: AreaBuyer}},
		{"buyer denied admin area", session(RoleBuyer, SellerStatusNone), AreaAdmin, Decision{Redirect: AreaBuyer}},
		{"unknown role fails closed", session(Role("owner"), SellerStatusApproved), AreaBuyer, Decision{Redirect: AreaBuyer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.session, tt.area))
		})
	}
}
