package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lamphouse/m/domain"
)

// AnalyticsStore computes read-only revenue aggregations.
type AnalyticsStore struct {
	db *sqlx.DB
}

// NewAnalyticsStore constructs an AnalyticsStore over db.
func NewAnalyticsStore(db *sqlx.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// RevenueByPackage sums subtotal + tax per package over all invoices,
// ordered by total descending. Inner join semantics: a package with no
// invoices never appears, even with a zero total. Ties keep store-default
// order, which is arbitrary.
func (s *AnalyticsStore) RevenueByPackage(ctx context.Context) ([]domain.PackageRevenue, error) {
	rows := []domain.PackageRevenue{}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT P.package_name,
                SUM(I.subtotal + I.tax) AS total_revenue
         FROM Invoices I
         JOIN Packages P ON I.package_id = P.package_id
         GROUP BY P.package_id, P.package_name
         ORDER BY total_revenue DESC`)
	return rows, err
}
