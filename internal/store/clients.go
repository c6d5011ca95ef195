package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lamphouse/m/domain"
)

// ClientStore performs CRUD over the Clients table.
type ClientStore struct {
	db *sqlx.DB
}

// NewClientStore constructs a ClientStore over db.
func NewClientStore(db *sqlx.DB) *ClientStore {
	return &ClientStore{db: db}
}

// List returns every client ordered by (last_name, first_name) ascending.
// No pagination; the result is as large as the table.
func (s *ClientStore) List(ctx context.Context) ([]domain.Client, error) {
	clients := []domain.Client{}
	err := s.db.SelectContext(ctx, &clients,
		`SELECT client_id, first_name, last_name, email, phone
         FROM Clients ORDER BY last_name, first_name`)
	return clients, err
}

// Create inserts a new client unconditionally. The store assigns client_id.
func (s *ClientStore) Create(ctx context.Context, fields domain.ClientFields) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Clients (first_name, last_name, email, phone) VALUES (?, ?, ?, ?)`,
		fields.FirstName, fields.LastName, fields.Email, fields.Phone)
	return err
}

// Get fetches one client by id. A missing client surfaces as sql.ErrNoRows.
func (s *ClientStore) Get(ctx context.Context, id int64) (domain.Client, error) {
	var client domain.Client
	err := s.db.GetContext(ctx, &client,
		`SELECT client_id, first_name, last_name, email, phone
         FROM Clients WHERE client_id = ?`, id)
	return client, err
}

// Update overwrites all four mutable fields. Last writer wins; there is no
// concurrency check. Updating a missing id affects zero rows and is not an
// error.
func (s *ClientStore) Update(ctx context.Context, id int64, fields domain.ClientFields) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE Clients SET first_name = ?, last_name = ?, email = ?, phone = ?
         WHERE client_id = ?`,
		fields.FirstName, fields.LastName, fields.Email, fields.Phone, id)
	return err
}

// Delete removes one client. Deleting a missing id affects zero rows and is
// a silent no-op.
func (s *ClientStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM Clients WHERE client_id = ?`, id)
	return err
}
