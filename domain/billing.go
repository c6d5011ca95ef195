package domain

// Package is a service package that invoices bill against. Read-only here;
// there are no package management routes.
type Package struct {
	ID   int64  `db:"package_id" json:"package_id"`
	Name string `db:"package_name" json:"package_name"`
}

// Invoice is a billed line against a package. Read-only here; only the
// analytics aggregation consumes it.
type Invoice struct {
	ID        int64   `db:"invoice_id" json:"invoice_id"`
	PackageID int64   `db:"package_id" json:"package_id"`
	Subtotal  float64 `db:"subtotal" json:"subtotal"`
	Tax       float64 `db:"tax" json:"tax"`
}

// PackageRevenue is one row of the revenue-by-package aggregation:
// total = SUM(subtotal + tax) over the package's invoices.
type PackageRevenue struct {
	PackageName  string  `db:"package_name" json:"package_name"`
	TotalRevenue float64 `db:"total_revenue" json:"total_revenue"`
}
