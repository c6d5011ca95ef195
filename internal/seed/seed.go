package seed

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin inserts the initial login account if no user with that name
// exists yet. The password is hashed with bcrypt before it touches the
// store. An empty password skips seeding entirely, so production deploys
// that manage users out of band are unaffected.
func EnsureAdmin(db *sqlx.DB, username, password string) {
	if password == "" {
		log.Printf("ADMIN_PASSWORD not set, skipping admin user seed")
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("unable to hash admin password: %v", err)
		return
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO Users (username, password) VALUES (?, ?)`, username, hashed); err != nil {
		log.Printf("unable to seed admin user: %v", err)
	}
}

// LoadDemoBilling populates Packages and Invoices with demo rows so the
// analytics page has something to chart on a fresh database. Packages are
// deduplicated by name; invoices are only inserted when the table is empty.
func LoadDemoBilling(db *sqlx.DB) {
	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start billing seed transaction: %v", err)
		return
	}

	for _, name := range []string{"Gold", "Silver", "Bronze"} {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO Packages (package_name) VALUES (?)`, name); err != nil {
			log.Printf("unable to seed package %s: %v", name, err)
			_ = tx.Rollback()
			return
		}
	}

	var invoices int
	if err := tx.Get(&invoices, `SELECT COUNT(*) FROM Invoices`); err != nil {
		log.Printf("unable to count invoices: %v", err)
		_ = tx.Rollback()
		return
	}
	if invoices == 0 {
		rows := []struct {
			pkg      string
			subtotal float64
			tax      float64
		}{
			{"Gold", 100, 10},
			{"Gold", 50, 5},
			{"Silver", 200, 0},
		}
		for _, row := range rows {
			_, err := tx.Exec(`INSERT INTO Invoices (package_id, subtotal, tax)
                SELECT package_id, ?, ? FROM Packages WHERE package_name = ?`,
				row.subtotal, row.tax, row.pkg)
			if err != nil {
				log.Printf("unable to seed invoice for %s: %v", row.pkg, err)
				_ = tx.Rollback()
				return
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit billing seed: %v", err)
	}
}
