package user

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
}

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

func ValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// PublicUser is the caller-facing projection of a User. It never carries
// the password hash.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
