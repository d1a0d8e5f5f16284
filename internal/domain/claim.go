package domain

type ClaimStatus string

const (
	ClaimStatusProcessing ClaimStatus = "processing"
	ClaimStatusShipping   ClaimStatus = "shipping"
	ClaimStatusDelivered  ClaimStatus = "delivered"
)

// Claim records that one NGO has reserved one pending donation.
type Claim struct {
	ID             int32       `json:"id"`
	DonationID     int32       `json:"donation_id"`
	NGOID          string      `json:"ngo_id"`
	Status         ClaimStatus `json:"status"`
	DeliveryCharge int32       `json:"delivery_charge"`
	ClaimedAt      string      `json:"claimed_at"`
}

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusProcessing: {ClaimStatusShipping},
	ClaimStatusShipping:   {ClaimStatusDelivered},
}

// CanTransitionTo reports whether the claim may advance from s to next.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	for _, t := range claimTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// DonationStatus maps a claim state onto the donation status it implies. A
// claim in "processing" belongs to a donation still showing "claimed"; from
// shipping on the two advance in lockstep.
func (s ClaimStatus) DonationStatus() DonationStatus {
	switch s {
	case ClaimStatusShipping:
		return DonationStatusShipping
	case ClaimStatusDelivered:
		return DonationStatusDelivered
	default:
		return DonationStatusClaimed
	}
}
