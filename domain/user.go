package domain

// User is an account allowed to log in. Password holds a bcrypt hash,
// never plaintext, and is kept out of JSON responses.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
