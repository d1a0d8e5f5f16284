package domain

type UserType string

const (
	UserTypeDonor UserType = "donor"
	UserTypeNGO   UserType = "ngo"
	UserTypeAdmin UserType = "admin"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Type         UserType    `json:"type"`
	Status       UserStatus  `json:"status"`
	NGODetails   *NGODetails `json:"ngoDetails,omitempty"` // Populated for NGO accounts when needed
	CreatedAt    string      `json:"created_at"`
}

// NGODetails extends a User of type "ngo" 1:1.
type NGODetails struct {
	NGOID              string `json:"ngo_id"`
	RegistrationNumber string `json:"registration_number"`
	Description        string `json:"description"`
	Category           string `json:"category"`
}
