package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/quailyquaily/datelog/assistant"
	"github.com/quailyquaily/datelog/chat"
	"github.com/quailyquaily/datelog/internal/clifmt"
	"github.com/quailyquaily/datelog/journal"
	"github.com/quailyquaily/datelog/providers/openai"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the AI dating coach",
}

var chatNewCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Start a new chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, chats, err := openStores(ctx)
		if err != nil {
			return err
		}
		title := strings.Join(args, " ")
		if strings.TrimSpace(title) == "" {
			title = "Chat " + time.Now().Format("01-02 15:04")
		}
		id, err := chats.CreateSession(ctx, title)
		if err != nil {
			return err
		}
		fmt.Println(clifmt.Success(fmt.Sprintf("Session %d created.", id)))
		return nil
	},
}

var chatSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List chat sessions, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		_, chats, err := openStores(ctx)
		if err != nil {
			return err
		}
		sessions, err := chats.ListSessions(ctx)
		if err != nil {
			return err
		}
		for _, s := range sessions {
			fmt.Printf("[%d] %s %s\n", s.ID, s.Title,
				clifmt.Dim(time.Unix(s.CreatedAt, 0).Format("2006-01-02 15:04")))
		}
		return nil
	},
}

var chatRmCmd = &cobra.Command{
	Use:   "rm <session-id>",
	Short: "Delete a session and its transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, chats, err := openStores(ctx)
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid session id: %s", args[0])
		}
		if err := chats.DeleteSession(ctx, id); err != nil {
			return err
		}
		fmt.Println(clifmt.Success("Session deleted."))
		return nil
	},
}

var chatLogCmd = &cobra.Command{
	Use:   "log <session-id>",
	Short: "Print a session transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, chats, err := openStores(ctx)
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid session id: %s", args[0])
		}
		messages, err := chats.ListMessages(ctx, id)
		if err != nil {
			return err
		}
		for _, m := range messages {
			fmt.Printf("%s %s\n", clifmt.Key(m.Role+":"), m.Content)
		}
		return nil
	},
}

var chatAskCmd = &cobra.Command{
	Use:   "ask <session-id> <question...>",
	Short: "Ask the coach a question in a session",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runChatAsk,
}

func runChatAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	store, chats, err := openStores(ctx)
	if err != nil {
		return err
	}
	sessionID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id: %s", args[0])
	}
	question := strings.Join(args[1:], " ")

	if err := chats.AddMessage(ctx, sessionID, chat.RoleUser, question); err != nil {
		return err
	}

	reply := answer(cmd, store, question)

	// The transcript records exactly what the user saw, errors included.
	if err := chats.AddMessage(ctx, sessionID, chat.RoleAssistant, reply); err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

// answer routes the question to the model when a key is configured and to
// the keyword fallback otherwise. Every failure degrades to a reply string.
func answer(cmd *cobra.Command, store *journal.GormStore, question string) string {
	ctx := cmd.Context()
	key := llmAPIKeyFromViper()
	if key == "" {
		matches, err := store.SearchEntries(ctx, question)
		if err != nil {
			return "Search error: " + err.Error()
		}
		return journal.FallbackReply(matches)
	}

	entries, err := store.ListEntries(ctx)
	if err != nil {
		return "Storage error: " + err.Error()
	}
	profile, err := store.GetProfile(ctx)
	if err != nil {
		slog.Warn("profile_load_failed", "error", err.Error())
	}

	coach := assistant.New(openai.New(llmEndpointFromViper(), key), llmModelFromViper())
	coach.Timeout = llmTimeoutFromViper()

	text, err := coach.Reply(ctx, question,
		journal.BuildContext(entries), journal.BuildProfileContext(profile))
	if err != nil {
		return "AI Error: " + err.Error()
	}
	return text
}

func init() {
	chatCmd.AddCommand(chatNewCmd, chatSessionsCmd, chatRmCmd, chatLogCmd, chatAskCmd)
	rootCmd.AddCommand(chatCmd)
}
