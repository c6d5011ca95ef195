package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema required by the Lamphouse backend.
// Users.password stores bcrypt hashes only.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS Users (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            username TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS Clients (
            client_id INTEGER PRIMARY KEY AUTOINCREMENT,
            first_name TEXT,
            last_name TEXT,
            email TEXT,
            phone TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS Packages (
            package_id INTEGER PRIMARY KEY AUTOINCREMENT,
            package_name TEXT NOT NULL,
            UNIQUE(package_name)
        );`,
		`CREATE TABLE IF NOT EXISTS Invoices (
            invoice_id INTEGER PRIMARY KEY AUTOINCREMENT,
            package_id INTEGER NOT NULL,
            subtotal REAL NOT NULL,
            tax REAL NOT NULL DEFAULT 0,
            FOREIGN KEY(package_id) REFERENCES Packages(package_id)
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
