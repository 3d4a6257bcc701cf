package message

import "time"

// Message is staff-to-staff mail within one gym. A nil RecipientID means a
// broadcast to all staff of the gym; broadcasts carry no per-reader read
// state.
type Message struct {
	ID          int       `db:"id" json:"id"`
	GymID       int       `db:"gym_id" json:"gym_id"`
	SenderID    int       `db:"sender_id" json:"sender_id"`
	RecipientID *int      `db:"recipient_id" json:"recipient_id,omitempty"`
	Subject     string    `db:"subject" json:"subject"`
	Body        string    `db:"body" json:"body"`
	Read        bool      `db:"read" json:"read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type SendMessageRequest struct {
	RecipientID *int   `json:"recipient_id"`
	Broadcast   bool   `json:"broadcast"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"body" binding:"required"`
}

type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
