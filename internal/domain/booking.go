package domain

import "time"

// BookingConfirmation is the completion signal returned to the caller
// after the backend has committed the reservation.
type BookingConfirmation struct {
	Reference string // correlation id assigned by this service
	SlotID    string
	MentorID  string
	StudentID string
	GigTitle  string
	StartTime time.Time
	EndTime   time.Time
	EmailSent bool // false when the confirmation mail could not be delivered
	BookedAt  time.Time
}
