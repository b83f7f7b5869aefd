package responses

import "github.com/jageocoder-go/app/models"

// ErrorResponse is a uniform error body across every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuccessResponse wraps an operation that has no richer natural body.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheckResponse is the body of GET /v1/health.
type HealthCheckResponse struct {
	Status               string `json:"status"`
	Uptime               string `json:"uptime"`
	DictionarySignature  string `json:"dictionary_signature"`
}

// ReviewListResponse is the body of GET /v1/admin/reviews.
type ReviewListResponse struct {
	Reviews []models.AliasReview `json:"reviews"`
	Total   int                  `json:"total"`
}

// AdminStatsResponse is the body of GET /v1/admin/stats.
type AdminStatsResponse struct {
	CacheHitRate      float64                `json:"cache_hit_rate"`
	PendingReviews    int64                  `json:"pending_reviews"`
	ApprovedReviews   int64                  `json:"approved_reviews"`
	LearnedAliases    int64                  `json:"learned_aliases"`
	DictionaryReloads int64                  `json:"dictionary_reloads"`
	UptimeSeconds     int64                  `json:"uptime_seconds"`
	MemoryUsage       map[string]interface{} `json:"memory_usage"`
}
