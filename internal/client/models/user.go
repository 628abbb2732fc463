package models

import "time"

// Role classifies what a user is allowed to do in the marketplace.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleAgent   Role = "agent"
	RoleAdmin   Role = "admin"
)

// SubscriptionTier is the user's paid plan.
type SubscriptionTier string

const (
	TierFree SubscriptionTier = "free"
	TierPro  SubscriptionTier = "pro"
)

// UserIdentity is a known marketplace user. The in-memory session owns the
// "current" identity; persisted copies live in the known-users directory and
// only enrich identities across restarts. ID is the join key between the
// directory and the remote provider's account.
type UserIdentity struct {
	ID               string           `json:"id"`
	DisplayName      string           `json:"displayName"`
	Email            string           `json:"email"`
	Role             Role             `json:"role"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier"`
	Phone            string           `json:"phone"`
	AvatarURL        string           `json:"avatarUrl"`
	Badge            string           `json:"badge,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}
