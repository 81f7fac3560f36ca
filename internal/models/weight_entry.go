package models

import "time"

// WeightEntryDB is a weight measurement in the weight_entries collection.
type WeightEntryDB struct {
	EntryID   string    `bson:"entry_id" json:"entry_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Weight    float64   `bson:"weight" json:"weight"` // kg
	Date      string    `bson:"date" json:"date"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// WeightEntryRequest represents the JSON body for logging a weight
// swagger:model WeightEntryRequest
type WeightEntryRequest struct {
	// Ignored: the entry always belongs to the caller.
	UserID string `json:"user_id,omitempty"`

	// required: true
	// example: 79.4
	Weight float64 `json:"weight" validate:"gt=0"`

	// required: true
	// example: 2024-05-01
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// Defaults to the time the entry is received.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
