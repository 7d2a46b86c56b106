package jobs

import (
	"context"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/youtube"
)

// Client is the slice of the YouTube API the fetch pipeline needs. The
// concrete youtube.Client satisfies it; tests substitute mocks.
type Client interface {
	ResolveHandle(ctx context.Context, handle string) (string, error)
	ChannelVideoPage(ctx context.Context, channelID, pageToken string) (*youtube.VideoPage, error)
	VideoDetail(ctx context.Context, videoID string) (*youtube.Video, error)
	CommentThreadPage(ctx context.Context, videoID, pageToken string) (*youtube.ThreadPage, error)
}

// CommentRecord is one row of the comments workbook: a top-level comment or
// a reply, flattened. ReplyTo is empty for top-level comments and holds the
// parent thread ID for replies.
type CommentRecord struct {
	VideoID     string
	CommentID   string
	Text        string
	Author      string
	PublishedAt string
	LikeCount   int64
	ReplyTo     string
}
