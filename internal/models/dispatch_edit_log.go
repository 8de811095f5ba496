package models

import "time"

// DispatchEditLog records one field-level change made while re-editing
// a saved dispatch batch. Append-only.
type DispatchEditLog struct {
	ID          int       `json:"id"`
	BatchID     int       `json:"batch_id"`
	TripID      *int      `json:"trip_id,omitempty"` // nil for batch-level changes
	Action      string    `json:"action"`            // created, updated, deleted
	FieldName   string    `json:"field_name"`
	OldValue    string    `json:"old_value"`
	NewValue    string    `json:"new_value"`
	EditedBy    int       `json:"edited_by"`
	EditedEmail string    `json:"edited_email"`
	CreatedAt   time.Time `json:"created_at"`
}
