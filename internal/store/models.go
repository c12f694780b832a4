package store

import "time"

type User struct {
	ID             int64     `json:"id"`
	ExternalUserID string    `json:"external_user_id"`
	PasswordHash   string    `json:"-"` // Do not expose this in JSON responses
	CreatedAt      time.Time `json:"created_at"`
}

// GuidanceRecord is a persisted generated-guidance document for a user.
type GuidanceRecord struct {
	ID        string    `json:"id"` // UUID
	UserID    int64     `json:"user_id"`
	Language  string    `json:"language"`
	Content   string    `json:"content"`
	Fallback  bool      `json:"fallback"`
	CreatedAt time.Time `json:"created_at"`
}

// Feeding is one breastfeeding session.
type Feeding struct {
	ID          string    `json:"id"` // UUID
	UserID      int64     `json:"user_id"`
	Side        string    `json:"side"` // "left", "right" or "both"
	DurationMin int       `json:"duration_min"`
	StartedAt   time.Time `json:"started_at"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GrowthMeasurement is one weight/height record for the baby.
type GrowthMeasurement struct {
	ID               string    `json:"id"` // UUID
	UserID           int64     `json:"user_id"`
	WeightKg         float64   `json:"weight_kg"`
	HeightCm         float64   `json:"height_cm"`
	WeightPercentile int       `json:"weight_percentile,omitempty"`
	HeightPercentile int       `json:"height_percentile,omitempty"`
	MeasuredAt       time.Time `json:"measured_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// CycleEntry is one menstrual-cycle record.
type CycleEntry struct {
	ID           string    `json:"id"` // UUID
	UserID       int64     `json:"user_id"`
	StartDate    time.Time `json:"start_date"`
	DurationDays int       `json:"duration_days"`
	Symptoms     string    `json:"symptoms,omitempty"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Document is a metadata record for a user's medical document. File blobs
// are not stored server-side.
type Document struct {
	ID        string    `json:"id"` // UUID
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
