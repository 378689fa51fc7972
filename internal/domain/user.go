package domain

type UserType string

const (
	Reader UserType = "reader"
	Writer UserType = "writer"
	Admin  UserType = "admin"
)

// User is the public identity of an account, and the only user data that is sent to clients.
type User struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Type     UserType `json:"type"`
	Game     bool     `json:"game"`
}

// Account is a user together with their bcrypt password hash. It must never be serialized.
type Account struct {
	User
	Password string `json:"-"`
}

// Registration is the data needed to create an account. Writers may include their author profile, which is then
// created together with the user.
type Registration struct {
	Username string
	Name     string
	Password string
	Type     UserType
	Author   *AuthorFields
}
