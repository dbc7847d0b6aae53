package dto

import "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"

// HealthResponse reports service and storage health
type HealthResponse struct {
	Status  string                          `json:"status"`
	Storage string                          `json:"storage"`
	DBPool  *database.ConnectionPoolMetrics `json:"dbPool,omitempty"`
}
