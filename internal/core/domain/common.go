package domain

import "time"

// AuditFields records who created and last changed a stored entity.
// Stored simulations are immutable, so both pairs start out equal.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
	Version       int64     `json:"version"`
}

// NewAuditFields stamps a first version created by userID at the given time (stored as UTC).
func NewAuditFields(userID string, at time.Time) AuditFields {
	at = at.UTC()
	return AuditFields{
		CreatedAt:     at,
		CreatedBy:     userID,
		LastUpdatedAt: at,
		LastUpdatedBy: userID,
		Version:       1,
	}
}
