package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lamphouse/m/internal/database"
	"lamphouse/m/internal/migrations"
	"lamphouse/m/internal/seed"
)

func TestEnsureAdmin(t *testing.T) {
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	seed.EnsureAdmin(db, "admin", "opensesame")
	seed.EnsureAdmin(db, "admin", "opensesame")

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM Users`))
	assert.Equal(t, 1, count, "seeding twice must not duplicate the user")

	var hash string
	require.NoError(t, db.Get(&hash, `SELECT password FROM Users WHERE username = ?`, "admin"))
	assert.NotEqual(t, "opensesame", hash, "password must never be stored in plaintext")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("opensesame")))
}

func TestEnsureAdmin_NoPasswordSkips(t *testing.T) {
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	seed.EnsureAdmin(db, "admin", "")

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM Users`))
	assert.Zero(t, count)
}

func TestLoadDemoBilling_Idempotent(t *testing.T) {
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	seed.LoadDemoBilling(db)
	seed.LoadDemoBilling(db)

	var packages, invoices int
	require.NoError(t, db.Get(&packages, `SELECT COUNT(*) FROM Packages`))
	require.NoError(t, db.Get(&invoices, `SELECT COUNT(*) FROM Invoices`))
	assert.Equal(t, 3, packages)
	assert.Equal(t, 3, invoices)
}
