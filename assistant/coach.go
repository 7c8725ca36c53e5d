// Package assistant turns the user's logged history into an LLM prompt and
// asks the configured model one question at a time.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quailyquaily/datelog/llm"
)

const defaultTimeout = 60 * time.Second

type Coach struct {
	Client llm.Client
	Model  string

	// Timeout bounds each remote call; expiry is an ordinary failure.
	Timeout time.Duration
}

func New(client llm.Client, model string) *Coach {
	return &Coach{
		Client:  client,
		Model:   model,
		Timeout: defaultTimeout,
	}
}

// Reply sends the assembled history plus the user's question to the model
// and returns its answer. One attempt, no retry; the caller decides how a
// failure is shown.
func (c *Coach) Reply(ctx context.Context, question, logContext, profileContext string) (string, error) {
	if c == nil || c.Client == nil {
		return "", fmt.Errorf("no llm client configured")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := c.Client.Chat(ctx, llm.Request{
		Model: c.Model,
		Messages: []llm.Message{
			{Role: "system", Content: buildSystemPrompt(logContext, profileContext)},
			{Role: "user", Content: "USER QUESTION: " + question},
		},
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return "", fmt.Errorf("empty reply from model")
	}
	return text, nil
}

func buildSystemPrompt(logContext, profileContext string) string {
	var b strings.Builder
	b.WriteString("You are a helpful and empathetic personal date logging assistant. ")
	b.WriteString("Use the following logs of the user's past dates to answer their question. ")
	b.WriteString("Analyze patterns, preferences, and specific details from the logs.\n\n")
	if strings.TrimSpace(profileContext) != "" {
		b.WriteString(profileContext)
		b.WriteString("\n")
	}
	b.WriteString("USER DATA LOGS:\n")
	b.WriteString(logContext)
	b.WriteString("\n")
	b.WriteString("Be concise but insightful. If the answer isn't in the logs, say so.")
	return b.String()
}
