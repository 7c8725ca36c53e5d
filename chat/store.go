package chat

import (
	"context"
	"errors"
)

// ErrSessionNotFound reports an append against a session that does not
// exist. Messages never dangle.
var ErrSessionNotFound = errors.New("chat session not found")

type Store interface {
	CreateSession(ctx context.Context, title string) (int64, error)
	ListSessions(ctx context.Context) ([]Session, error)
	DeleteSession(ctx context.Context, sessionID int64) error

	AddMessage(ctx context.Context, sessionID int64, role, content string) error
	ListMessages(ctx context.Context, sessionID int64) ([]Message, error)
}
