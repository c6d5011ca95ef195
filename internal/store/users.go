// Package store provides sqlx-backed repositories over the Lamphouse schema.
// Each operation is scoped to its request context; callers own transaction
// boundaries (none of these operations need one).
package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lamphouse/m/domain"
)

// UserStore reads login accounts. There are no user-management routes, so
// this store is lookup-only.
type UserStore struct {
	db *sqlx.DB
}

// NewUserStore constructs a UserStore over db.
func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// ByUsername fetches exactly one user by case-sensitive username match.
// A missing user surfaces as sql.ErrNoRows.
func (s *UserStore) ByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		`SELECT id, username, password FROM Users WHERE username = ?`, username)
	return user, err
}
