package api

import "net/http"

// revenueAnalytics returns per-package revenue rows plus the parallel
// label/total arrays the chart on the analytics page consumes.
func (h *Handler) revenueAnalytics(w http.ResponseWriter, r *http.Request) {
	rows, err := h.analytics.RevenueByPackage(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to compute revenue")
		return
	}
	labels := make([]string, len(rows))
	totals := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = row.PackageName
		totals[i] = row.TotalRevenue
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"revenue": rows,
		"labels":  labels,
		"totals":  totals,
		"flash":   popFlash(w, r),
	})
}
