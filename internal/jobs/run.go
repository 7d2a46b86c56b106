// SPDX-License-Identifier: MIT

package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/export"
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/log"
)

// Config holds the parameters of one fetch run.
type Config struct {
	// Handle is the channel reference as the user gave it; Run normalizes
	// it before resolution.
	Handle string
	// MaxComments caps how many comment threads are fetched across all
	// videos combined. Zero means videos only.
	MaxComments int
	// DataDir is where the two workbooks land.
	DataDir string
}

// Status summarizes a completed fetch run.
type Status struct {
	Handle       string        `json:"handle"`
	ChannelID    string        `json:"channel_id"`
	Videos       int           `json:"videos"`
	Comments     int           `json:"comments"`
	VideosPath   string        `json:"videos_path"`
	CommentsPath string        `json:"comments_path"`
	Duration     time.Duration `json:"duration"`
}

// Run performs the complete fetch cycle: resolve the handle, collect the
// channel's videos, export the videos workbook, collect comments under the
// global budget, export the comments workbook.
//
// Resolution failure and export failure abort the run. Fetch failures after
// resolution never do; the aggregators keep partial results and the
// workbooks reflect whatever was collected.
func Run(ctx context.Context, cfg Config, cl Client) (*Status, error) {
	start := time.Now()
	logger := log.WithComponentFromContext(ctx, "jobs")

	cfg.Handle = NormalizeHandle(cfg.Handle)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	logger.Info().
		Str("event", "run.start").
		Str(log.FieldHandle, cfg.Handle).
		Int("max_comments", cfg.MaxComments).
		Msg("starting fetch run")

	channelID, err := cl.ResolveHandle(ctx, cfg.Handle)
	if err != nil {
		return nil, fmt.Errorf("resolve handle %q: %w", cfg.Handle, err)
	}
	logger.Info().
		Str("event", "run.resolved").
		Str(log.FieldHandle, cfg.Handle).
		Str(log.FieldChannelID, channelID).
		Msg("handle resolved")

	videos := FetchAllVideos(ctx, cl, channelID)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	// Videos are exported before any comment fetching so a comment-stage
	// problem can never cost the video dataset.
	videosPath := filepath.Join(cfg.DataDir, fmt.Sprintf("videos_data_%s.xlsx", cfg.Handle))
	if err := export.WriteFile(ctx, videosPath, videosTable(videos)); err != nil {
		return nil, fmt.Errorf("write videos workbook: %w", err)
	}
	logger.Info().
		Str("event", "videos.write").
		Str(log.FieldPath, videosPath).
		Int("videos", len(videos)).
		Msg("videos workbook written")

	var comments []CommentRecord
	for _, v := range videos {
		remaining := cfg.MaxComments - len(comments)
		if remaining <= 0 {
			break
		}
		comments = append(comments, FetchComments(ctx, cl, v.ID, remaining)...)
	}

	commentsPath := filepath.Join(cfg.DataDir, fmt.Sprintf("comments_data_of_%s.xlsx", cfg.Handle))
	if err := export.WriteFile(ctx, commentsPath, commentsTable(comments)); err != nil {
		return nil, fmt.Errorf("write comments workbook: %w", err)
	}
	logger.Info().
		Str("event", "comments.write").
		Str(log.FieldPath, commentsPath).
		Int("comments", len(comments)).
		Msg("comments workbook written")

	status := &Status{
		Handle:       cfg.Handle,
		ChannelID:    channelID,
		Videos:       len(videos),
		Comments:     len(comments),
		VideosPath:   videosPath,
		CommentsPath: commentsPath,
		Duration:     time.Since(start),
	}
	logger.Info().
		Str("event", "run.success").
		Int("videos", status.Videos).
		Int("comments", status.Comments).
		Dur("duration", status.Duration).
		Msg("fetch run completed")
	return status, nil
}

func validateConfig(cfg Config) error {
	if cfg.Handle == "" {
		return fmt.Errorf("channel handle is empty")
	}
	if cfg.MaxComments < 0 {
		return fmt.Errorf("comment budget must be non-negative, got %d", cfg.MaxComments)
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("data directory is empty")
	}
	return nil
}
