package dto

import "time"

// AdminSummaryResponse aggregates platform-wide counts for the admin dashboard.
type AdminSummaryResponse struct {
	Students            int64     `json:"students"`
	Faculty             int64     `json:"faculty"`
	Projects            int64     `json:"projects"`
	PendingApplications int64     `json:"pending_applications"`
	GeneratedAt         time.Time `json:"generated_at"`
	CacheHit            bool      `json:"cache_hit"`
}
