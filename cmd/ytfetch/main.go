// SPDX-License-Identifier: MIT

// Command ytfetch exports a YouTube channel's videos and comment threads
// into two xlsx workbooks.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/config"
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/jobs"
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/log"
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/youtube"
)

// Overridden at build time via -ldflags.
var (
	version   = "v1.0.0"
	commit    = "none"
	buildDate = "unknown"
)

type options struct {
	handle   string
	comments int
	dataDir  string
	logLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "ytfetch",
		Short: "Export a YouTube channel's videos and comments to xlsx workbooks",
		Long: `ytfetch resolves a channel handle, lists every video the search index
returns for the channel, fetches per-video statistics, then collects comment
threads up to a global budget. Results land in two xlsx workbooks in the
data directory.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.handle, "handle", "", "channel handle or URL (prompted for when omitted)")
	cmd.Flags().IntVar(&opts.comments, "comments", -1, "total comment budget across all videos (prompted for when negative)")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory for the xlsx workbooks (default $YTFETCH_DATA or .)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	settings := config.Load()
	if opts.dataDir != "" {
		settings.DataDir = opts.dataDir
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}

	log.Configure(log.Config{
		Level:   settings.LogLevel,
		Service: "ytfetch",
		Version: version,
	})
	logger := log.WithComponent("cli")

	// One reader for both prompts; a fresh reader per prompt could buffer
	// the second answer away.
	in := bufio.NewReader(cmd.InOrStdin())

	handle := strings.TrimSpace(opts.handle)
	if handle == "" {
		var err error
		handle, err = promptLine(cmd.OutOrStdout(), in, "Enter YouTube channel username: ")
		if err != nil {
			return err
		}
	}

	maxComments := opts.comments
	if maxComments < 0 {
		raw, err := promptLine(cmd.OutOrStdout(), in, "Enter the number of comments you want to fetch: ")
		if err != nil {
			return err
		}
		// Bad input must be rejected before any client exists or quota
		// is spent.
		maxComments, err = parseCommentCount(raw)
		if err != nil {
			return err
		}
	}

	client, err := youtube.NewWithOptions(settings.APIKey, youtube.Options{
		Timeout: settings.HTTPTimeout,
	})
	if err != nil {
		return err
	}

	ctx := log.ContextWithRunID(cmd.Context(), uuid.NewString())

	logger.Info().
		Str("event", "startup").
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting ytfetch")
	logger.Info().Msgf("→ Data dir: %s", settings.DataDir)

	status, err := jobs.Run(ctx, jobs.Config{
		Handle:      handle,
		MaxComments: maxComments,
		DataDir:     settings.DataDir,
	}, client)
	if err != nil {
		logger.Error().Err(err).Str("event", "run.failed").Msg("fetch run failed")
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fetched %d videos and %d comments for @%s\n", status.Videos, status.Comments, status.Handle)
	fmt.Fprintf(out, "→ Videos:   %s\n", status.VideosPath)
	fmt.Fprintf(out, "→ Comments: %s\n", status.CommentsPath)
	return nil
}

func promptLine(out io.Writer, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func parseCommentCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid value for comment count: %q", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("comment count must be non-negative, got %d", n)
	}
	return n, nil
}
