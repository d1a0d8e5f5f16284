package domain

// Feedback is a rating plus comment from one user to another about a
// specific donation. At most one row exists per (donation, from, to).
type Feedback struct {
	ID           int32  `json:"id"`
	DonationID   int32  `json:"donation_id"`
	FromID       string `json:"from_id"`
	ToID         string `json:"to_id"`
	FromName     string `json:"from_name,omitempty"`
	FromType     string `json:"from_type,omitempty"`
	ToName       string `json:"to_name,omitempty"`
	ToType       string `json:"to_type,omitempty"`
	DonationName string `json:"donation_name,omitempty"`
	Rating       int32  `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"created_at"`
}

// FeedbackFilter holds the optional list filters. Zero values mean "no filter".
type FeedbackFilter struct {
	DonorID    string
	NGOID      string
	DonationID int32
}
