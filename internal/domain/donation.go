package domain

type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "pending"
	DonationStatusClaimed    DonationStatus = "claimed"
	DonationStatusProcessing DonationStatus = "processing"
	DonationStatusShipping   DonationStatus = "shipping"
	DonationStatusDelivered  DonationStatus = "delivered"
	DonationStatusCancelled  DonationStatus = "cancelled"
	DonationStatusRemoved    DonationStatus = "removed"
)

type DonationCondition string

const (
	DonationConditionExcellent DonationCondition = "excellent"
	DonationConditionGood      DonationCondition = "good"
	DonationConditionFair      DonationCondition = "fair"
	DonationConditionPoor      DonationCondition = "poor"
)

type DeliveryOption string

const (
	DeliveryOptionPickup   DeliveryOption = "pickup"
	DeliveryOptionDelivery DeliveryOption = "delivery"
	DeliveryOptionBoth     DeliveryOption = "both"
)

type Donation struct {
	ID             int32          `json:"id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Conditions     string         `json:"conditions"`
	Description    string         `json:"description"`
	DonorID        string         `json:"donor_id"`
	DonorName      string         `json:"donor_name,omitempty"`
	DeliveryOption string         `json:"delivery_option"`
	Location       string         `json:"location"`
	Status         DonationStatus `json:"status"`
	Images         []string       `json:"images"`
	Claim          *Claim         `json:"claim,omitempty"` // Populated on the claim view
	CreatedAt      string         `json:"created_at"`
}

// donationTransitions lists the status edges reachable through the donation
// endpoints. Once a donation is claimed its status is driven exclusively by
// the claim lifecycle, so no edge leaves claimed or any later state here.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPending: {DonationStatusClaimed, DonationStatusCancelled, DonationStatusRemoved},
}

// CanTransitionTo reports whether moving from s to next follows a legal edge.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, t := range donationTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// DonationFilter holds the optional list filters. Zero values mean "no filter".
type DonationFilter struct {
	Category   string
	Conditions string
	Status     string
	DonorID    string
	NGOID      string
}
