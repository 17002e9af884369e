package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/message-polisher/internal/observability"
	"github.com/jonathan/message-polisher/internal/phrasebank"
	"github.com/jonathan/message-polisher/internal/reply"
	"github.com/jonathan/message-polisher/internal/types"
	"github.com/spf13/cobra"
)

var (
	replyStyle  string
	replyMedium string
	replyCount  int
)

var replyCmd = &cobra.Command{
	Use:   "reply <incoming message>",
	Short: "Suggest canned replies to an incoming message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReply,
}

func init() {
	replyCmd.Flags().StringVar(&replyStyle, "style", "neutral", "Reply style: neutral, positive, pushback, clarify, acknowledge")
	replyCmd.Flags().StringVar(&replyMedium, "medium", "slack", "Medium: email, slack, teams, whatsapp, text, doc")
	replyCmd.Flags().IntVar(&replyCount, "count", 3, "How many suggestions to return (1-6)")
	rootCmd.AddCommand(replyCmd)
}

func runReply(_ *cobra.Command, args []string) error {
	req := &types.ReplySuggestionsRequest{
		Incoming:    strings.Join(args, " "),
		Style:       types.Style(replyStyle),
		Medium:      types.Medium(replyMedium),
		Suggestions: replyCount,
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	replies := reply.Suggest(phrasebank.Defaults(), req.Style, req.Medium, req.Suggestions)
	observability.NewPrinter(os.Stdout).PrintReplies(replies)
	return nil
}
