package users

// User is a registered account. Email keeps the case it was registered with.
type User struct {
	Email    string
	Password string
}
