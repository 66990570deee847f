package auth

// Roles understood by the API.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
