package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/quailyquaily/datelog/llm"
)

type fakeClient struct {
	got  llm.Request
	text string
	err  error
}

func (f *fakeClient) Chat(_ context.Context, req llm.Request) (llm.Result, error) {
	f.got = req
	if f.err != nil {
		return llm.Result{}, f.err
	}
	return llm.Result{Text: f.text}, nil
}

func TestReplyPromptCarriesLogsAndQuestion(t *testing.T) {
	fc := &fakeClient{text: "You seem to enjoy outdoor dates."}
	c := New(fc, "test-model")

	logs := "Date: 2026-01-01, Partner: Alex, Tags: Outdoorsy, Notes: hiked\n"
	profile := "USER PROFILE:\nName: Jo\n"

	reply, err := c.Reply(context.Background(), "what do I like?", logs, profile)
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != "You seem to enjoy outdoor dates." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if fc.got.Model != "test-model" {
		t.Fatalf("model not threaded through: %q", fc.got.Model)
	}
	if len(fc.got.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(fc.got.Messages))
	}
	sys := fc.got.Messages[0]
	if sys.Role != "system" || !strings.Contains(sys.Content, logs) || !strings.Contains(sys.Content, "Name: Jo") {
		t.Fatalf("system prompt missing context:\n%s", sys.Content)
	}
	user := fc.got.Messages[1]
	if user.Role != "user" || !strings.Contains(user.Content, "what do I like?") {
		t.Fatalf("user message missing question: %+v", user)
	}
}

func TestReplyWithoutProfileBlock(t *testing.T) {
	fc := &fakeClient{text: "ok"}
	c := New(fc, "m")

	if _, err := c.Reply(context.Background(), "q", "logs\n", ""); err != nil {
		t.Fatalf("reply: %v", err)
	}
	if strings.Contains(fc.got.Messages[0].Content, "USER PROFILE") {
		t.Fatalf("empty profile should be omitted:\n%s", fc.got.Messages[0].Content)
	}
}

func TestReplySurfacesClientError(t *testing.T) {
	fc := &fakeClient{err: errors.New("connection refused")}
	c := New(fc, "m")

	_, err := c.Reply(context.Background(), "q", "", "")
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected client error surfaced, got %v", err)
	}
}

func TestReplyRejectsEmptyText(t *testing.T) {
	fc := &fakeClient{text: "   "}
	c := New(fc, "m")

	if _, err := c.Reply(context.Background(), "q", "", ""); err == nil {
		t.Fatal("expected error for empty model reply")
	}
}

func TestReplyWithoutClient(t *testing.T) {
	c := &Coach{}
	if _, err := c.Reply(context.Background(), "q", "", ""); err == nil {
		t.Fatal("expected error with no client configured")
	}
}
