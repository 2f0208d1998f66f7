package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var (
		jsonOutput bool
		maxEvents  int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream game events from the server",
		Long: `Connect to the game's event stream and print events as they happen.

Events include:
  - cash-changed, savings-changed, loan-changed: money moved
  - time-changed, location-changed: the current player acted
  - happiness-changed, hunger-changed, inventory-changed
  - career-changed, education-changed, graduation
  - turn-ended: a turn summary is waiting
  - player-changed: play passed to another seat
  - ai-thinking-start, ai-thinking-end: the computer is playing
  - log-appended: a new game log line
  - state-changed, game-over

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return streamEvents(ctx, cmd.OutOrStdout(), jsonOutput, maxEvents)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON lines")
	cmd.Flags().IntVar(&maxEvents, "max", 0, "Disconnect after this many events (0 streams until interrupted)")

	return cmd
}

// SSEEvent represents a parsed SSE event
type SSEEvent struct {
	Time  time.Time       `json:"time"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func streamEvents(ctx context.Context, out io.Writer, jsonOutput bool, maxEvents int) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + "/api/v1/game/events"

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout for SSE
	httpClient := &http.Client{}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	var currentEvent string
	var dataLines []string
	seen := 0

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			currentEvent = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			if currentEvent != "" {
				printEvent(out, currentEvent, strings.Join(dataLines, "\n"), jsonOutput)
				seen++
				if maxEvents > 0 && seen >= maxEvents {
					return nil
				}
			}
			currentEvent = ""
			dataLines = nil
		}
	}

	if err := scanner.Err(); err != nil {
		// Context cancellation is expected
		if ctx.Err() != nil {
			if !jsonOutput {
				_, _ = fmt.Fprintln(out, "\nDisconnected")
			}
			return nil
		}
		return fmt.Errorf("stream error: %w", err)
	}

	if !jsonOutput {
		_, _ = fmt.Fprintln(out, "Disconnected")
	}
	return nil
}

func printEvent(out io.Writer, event, data string, jsonOutput bool) {
	if jsonOutput {
		raw := json.RawMessage(data)
		if !json.Valid(raw) {
			raw, _ = json.Marshal(data)
		}
		line, _ := json.Marshal(SSEEvent{Time: time.Now(), Event: event, Data: raw})
		_, _ = fmt.Fprintln(out, string(line))
		return
	}

	timestamp := time.Now().Format("15:04:05")
	_, _ = fmt.Fprintf(out, "%s %s %s\n",
		labelStyle.Render("["+timestamp+"]"), titleStyle.Render(event), data)
}
