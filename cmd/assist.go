package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avikal/orderflow"
	"github.com/avikal/orderflow/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `oflow assist [question]

  Start an interactive session with the AI assistant. The assistant is
  grounded on the current snapshot and its dashboard summary.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	svc, err := NewService(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := svc.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading orders: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	if err := runAssist(ctx, client, ledger, os.Stdout, os.Stdin, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const assistPrompt = "assist> "

// runAssist starts the interactive REPL session with the assistant.
func runAssist(ctx context.Context, client *genai.Client, ledger *orderflow.Ledger, w io.Writer, r io.Reader, prompts ...string) error {
	// Ground the chat on the full order table and its dashboard.
	summary := orderflow.Summarize(ledger)
	system := "You are the assistant of a small merchandise business. " +
		"Answer questions about the order ledger below. Be concise.\n\n" +
		renderer.OrdersMarkdown(ledger) + "\n" + renderer.DashboardMarkdown(summary)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Welcome to oflow assist. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, assistPrompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		resp, err := chat.Send(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			fmt.Fprintln(w, "(no answer)")
			continue
		}
		printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	}
}
