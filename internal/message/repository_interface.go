package message

import "context"

type Repository interface {
	Create(ctx context.Context, gymID, senderID int, recipientID *int, subject, body string) (*Message, error)
	GetByID(ctx context.Context, gymID, id int) (*Message, error)
	Inbox(ctx context.Context, gymID, profileID int) ([]Message, error)
	UnreadCount(ctx context.Context, gymID, profileID int) (int, error)
	MarkRead(ctx context.Context, gymID, id int) error
}
