package message

import (
	"context"
	"errors"
)

var (
	ErrInvalidRecipient = errors.New("message needs a recipient or broadcast flag")
	ErrNotRecipient     = errors.New("only the recipient can mark a message read")
	ErrBroadcastRead    = errors.New("broadcast messages carry no read state")
)

type Service interface {
	Send(ctx context.Context, gymID, senderID int, req SendMessageRequest) (*Message, error)
	Inbox(ctx context.Context, gymID, profileID int) ([]Message, error)
	UnreadCount(ctx context.Context, gymID, profileID int) (int, error)
	MarkRead(ctx context.Context, gymID, profileID, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Send(ctx context.Context, gymID, senderID int, req SendMessageRequest) (*Message, error) {
	if req.Broadcast == (req.RecipientID != nil) {
		return nil, ErrInvalidRecipient
	}

	return s.repo.Create(ctx, gymID, senderID, req.RecipientID, req.Subject, req.Body)
}

func (s *service) Inbox(ctx context.Context, gymID, profileID int) ([]Message, error) {
	return s.repo.Inbox(ctx, gymID, profileID)
}

func (s *service) UnreadCount(ctx context.Context, gymID, profileID int) (int, error) {
	return s.repo.UnreadCount(ctx, gymID, profileID)
}

func (s *service) MarkRead(ctx context.Context, gymID, profileID, id int) error {
	m, err := s.repo.GetByID(ctx, gymID, id)
	if err != nil {
		return ErrMessageNotFound
	}

	if m.RecipientID == nil {
		return ErrBroadcastRead
	}
	if *m.RecipientID != profileID {
		return ErrNotRecipient
	}

	return s.repo.MarkRead(ctx, gymID, id)
}
