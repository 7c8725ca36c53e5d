// Package chat owns assistant conversations: sessions and their append-only
// message transcripts. Failures from the assistant are persisted as ordinary
// messages, so the transcript is a literal record of what the user saw.
package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultSessionTitle is used when a session is created with a blank title.
const DefaultSessionTitle = "New Chat"

type Session struct {
	ID        int64
	Title     string
	CreatedAt int64
}

type Message struct {
	ID        int64
	SessionID int64
	Role      string
	Content   string
	CreatedAt int64
}
