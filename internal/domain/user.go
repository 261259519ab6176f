package domain

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID           string   `json:"id"` // identity-provider uid
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"` // set only for credential-based admin accounts
	CreatedOn    string   `json:"created_on"`
}
