package types

import "time"

// BaseEntity is embedded by persistent entities to carry the audit trail.
type BaseEntity struct {
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
