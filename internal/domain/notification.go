package domain

import "time"

// Notification is a message for a member, produced as a side effect of
// cancellations (the affected opponent is told their game is gone).
// Delivery to the member is the UI layer's concern.
type Notification struct {
	ID           string // uuid
	RecipientCPF string
	Message      string
	Read         bool
	CreatedAt    time.Time
}
