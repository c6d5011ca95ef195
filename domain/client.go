package domain

// Client is a customer record managed through the clients CRUD pages.
type Client struct {
	ID        int64  `db:"client_id" json:"client_id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
}

// ClientFields holds the four mutable attributes of a Client, as submitted
// by the new/edit forms. Absent form fields arrive as empty strings.
type ClientFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
