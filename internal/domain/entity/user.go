// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	domainerrors "kampuskart/internal/domain/errors"

	"github.com/google/uuid"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// User is an account on the marketplace. Role and SellerStatus together form the
// account's position in the seller application lifecycle.
type User struct {
	ID                   uuid.UUID
	FirstName            string
	LastName             string
	Email                string // Always stored lowercase.
	PasswordHash         string
	Role                 Role
	SellerStatus         SellerStatus
	IsVerified           bool       // Set when a seller application is approved.
	StudentIDNumber      string     // Submitted with a seller application.
	VerificationImageRef string     // Blob reference of the student ID photo.
	ApplicationDate      *time.Time // When the latest seller application was submitted.
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasApplication reports whether the user has ever submitted a seller application.
func (u *User) HasApplication() bool {
	return u.SellerStatus != SellerStatusNone
}

// ApplyForSeller moves a buyer into the pending state. Rejected buyers may reapply
// and a pending buyer may resubmit, which replaces the previous submission.
func (u *User) ApplyForSeller(studentIDNumber, imageRef string, now time.Time) error {
	if imageRef == "" {
		return domainerrors.NewValidationError("Student ID picture is required")
	}

	if u.Role != RoleBuyer {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"role":         u.Role.String(),
			"sellerStatus": u.SellerStatus.String(),
		})
	}

	u.SellerStatus = SellerStatusPending
	u.StudentIDNumber = strings.TrimSpace(studentIDNumber)
	u.VerificationImageRef = imageRef
	u.ApplicationDate = &now
	u.UpdatedAt = now

	return nil
}

// ApproveSeller grants the seller role to a pending applicant. Approving an
// already approved seller is a no-op.
func (u *User) ApproveSeller(now time.Time) error {
	if u.Role == RoleSeller && u.SellerStatus == SellerStatusApproved {
		return nil
	}

	if u.Role != RoleBuyer || u.SellerStatus != SellerStatusPending {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"role":         u.Role.String(),
			"sellerStatus": u.SellerStatus.String(),
		})
	}

	u.Role = RoleSeller
	u.SellerStatus = SellerStatusApproved
	u.IsVerified = true
	u.UpdatedAt = now

	return nil
}

// RejectSeller rejects a pending application. Rejecting an already rejected
// application leaves the account untouched.
func (u *User) RejectSeller(now time.Time) error {
	if u.Role == RoleBuyer && u.SellerStatus == SellerStatusRejected {
		return nil
	}

	if u.Role != RoleBuyer || u.SellerStatus != SellerStatusPending {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"role":         u.Role.String(),
			"sellerStatus": u.SellerStatus.String(),
		})
	}

	u.SellerStatus = SellerStatusRejected
	u.UpdatedAt = now

	return nil
}

// PromoteToAdmin is only used by out-of-band provisioning.
func (u *User) PromoteToAdmin(now time.Time) {
	u.Role = RoleAdmin
	u.SellerStatus = SellerStatusNone
	u.IsVerified = true
	u.UpdatedAt = now
}

// Session returns the authorization view of the user.
func (u *User) Session() *Session {
	return &Session{
		UserID:       u.ID,
		Email:        u.Email,
		Role:         u.Role,
		SellerStatus: u.SellerStatus,
	}
}
