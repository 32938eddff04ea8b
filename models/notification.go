package models

import "time"

// AppNotification is an in-app notification targeted at one of the three roles.
type AppNotification struct {
	ID         string    `bson:"id" json:"id"`
	Message    string    `bson:"message" json:"message"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	IsRead     bool      `bson:"isRead" json:"isRead"`
	TargetRole string    `bson:"targetRole" json:"targetRole"` // Client | Partner | Admin
	RequestID  string    `bson:"requestId,omitempty" json:"requestId,omitempty"`
	Category   string    `bson:"category" json:"category"`
}

// SimulatedEmail is an outbound email recorded instead of sent. Delivery is
// handled by the notification worker.
type SimulatedEmail struct {
	ID               string    `bson:"id" json:"id"`
	Recipient        string    `bson:"recipient" json:"recipient"`
	RecipientAddress string    `bson:"recipientAddress" json:"recipientAddress"`
	Subject          string    `bson:"subject" json:"subject"`
	Body             string    `bson:"body" json:"body"`
	SentAt           time.Time `bson:"sentAt" json:"sentAt"`
	RequestID        string    `bson:"requestId,omitempty" json:"requestId,omitempty"`
}
