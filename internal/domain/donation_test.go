package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatusCanTransitionTo(t *testing.T) {
	t.Run("PendingEdges", func(t *testing.T) {
		assert.True(t, DonationStatusPending.CanTransitionTo(DonationStatusClaimed))
		assert.True(t, DonationStatusPending.CanTransitionTo(DonationStatusCancelled))
		assert.True(t, DonationStatusPending.CanTransitionTo(DonationStatusRemoved))
		assert.False(t, DonationStatusPending.CanTransitionTo(DonationStatusDelivered))
		assert.False(t, DonationStatusPending.CanTransitionTo(DonationStatusShipping))
	})

	t.Run("ClaimedStatesAreNotDonorReachable", func(t *testing.T) {
		// Everything after the claim belongs to the claim lifecycle.
		for _, s := range []DonationStatus{DonationStatusClaimed, DonationStatusProcessing, DonationStatusShipping} {
			for _, next := range []DonationStatus{DonationStatusPending, DonationStatusClaimed, DonationStatusProcessing, DonationStatusShipping, DonationStatusDelivered, DonationStatusCancelled, DonationStatusRemoved} {
				assert.False(t, s.CanTransitionTo(next), "%s should not move to %s", s, next)
			}
		}
	})

	t.Run("TerminalStatesHaveNoEdges", func(t *testing.T) {
		for _, terminal := range []DonationStatus{DonationStatusDelivered, DonationStatusCancelled, DonationStatusRemoved} {
			for _, next := range []DonationStatus{DonationStatusPending, DonationStatusClaimed, DonationStatusProcessing, DonationStatusShipping, DonationStatusDelivered, DonationStatusCancelled, DonationStatusRemoved} {
				assert.False(t, terminal.CanTransitionTo(next), "%s should not move to %s", terminal, next)
			}
		}
	})
}

func TestClaimStatusCanTransitionTo(t *testing.T) {
	assert.True(t, ClaimStatusProcessing.CanTransitionTo(ClaimStatusShipping))
	assert.True(t, ClaimStatusShipping.CanTransitionTo(ClaimStatusDelivered))
	assert.False(t, ClaimStatusProcessing.CanTransitionTo(ClaimStatusDelivered))
	assert.False(t, ClaimStatusShipping.CanTransitionTo(ClaimStatusProcessing))
	assert.False(t, ClaimStatusDelivered.CanTransitionTo(ClaimStatusShipping))
}

func TestClaimStatusDonationStatus(t *testing.T) {
	assert.Equal(t, DonationStatusClaimed, ClaimStatusProcessing.DonationStatus())
	assert.Equal(t, DonationStatusShipping, ClaimStatusShipping.DonationStatus())
	assert.Equal(t, DonationStatusDelivered, ClaimStatusDelivered.DonationStatus())
}
