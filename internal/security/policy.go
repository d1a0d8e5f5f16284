package security

import "donorlink-backend/internal/domain"

// Action names a capability a principal may or may not hold.
type Action string

const (
	ActionCreateDonation Action = "donation.create"
	ActionClaimDonation  Action = "donation.claim"
	ActionModerateUsers  Action = "users.moderate"
	ActionListUsers      Action = "users.list"
)

// Can reports whether the principal holds the capability. Inactive accounts
// hold none of them.
func Can(principal *domain.User, action Action) bool {
	if principal == nil || principal.Status != domain.UserStatusActive {
		return false
	}
	switch action {
	case ActionCreateDonation:
		return principal.Type == domain.UserTypeDonor
	case ActionClaimDonation:
		return principal.Type == domain.UserTypeNGO
	case ActionModerateUsers, ActionListUsers:
		return principal.Type == domain.UserTypeAdmin
	default:
		return false
	}
}

// Owns reports whether the principal owns a resource. Ownership checks are
// separate from capability checks: a donor may delete their own donation but
// nobody else's.
func Owns(principal *domain.User, ownerID string) bool {
	return principal != nil && principal.ID == ownerID
}
