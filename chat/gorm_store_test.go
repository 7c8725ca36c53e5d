package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/quailyquaily/datelog/db"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	cfg := db.DefaultConfig()
	cfg.DSN = ":memory:"
	cfg.SQLite.WAL = false
	gdb, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormStore(gdb)
}

func TestCreateSessionDefaultsTitle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateSession(ctx, "   ")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != id {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
	if sessions[0].Title != DefaultSessionTitle {
		t.Fatalf("expected default title, got %q", sessions[0].Title)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateSession(ctx, "first")
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := s.CreateSession(ctx, "second")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != second || sessions[1].ID != first {
		t.Fatalf("expected newest first, got %+v", sessions)
	}
}

func TestMessageTranscriptOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateSession(ctx, "coach")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := s.AddMessage(ctx, id, RoleUser, "hi"); err != nil {
		t.Fatalf("add user message: %v", err)
	}
	if err := s.AddMessage(ctx, id, RoleAssistant, "hello"); err != nil {
		t.Fatalf("add assistant message: %v", err)
	}

	messages, err := s.ListMessages(ctx, id)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != RoleUser || messages[0].Content != "hi" {
		t.Fatalf("first message mismatch: %+v", messages[0])
	}
	if messages[1].Role != RoleAssistant || messages[1].Content != "hello" {
		t.Fatalf("second message mismatch: %+v", messages[1])
	}
}

func TestAddMessageMissingSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AddMessage(ctx, 42, RoleUser, "hello?")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSessionRemovesTranscript(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateSession(ctx, "doomed")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := s.AddMessage(ctx, id, RoleUser, "hi"); err != nil {
		t.Fatalf("add message: %v", err)
	}
	if err := s.DeleteSession(ctx, id); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}
	messages, err := s.ListMessages(ctx, id)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(messages))
	}
}
