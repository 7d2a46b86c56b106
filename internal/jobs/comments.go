package jobs

import (
	"context"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/log"
)

// FetchComments collects comment threads for one video until maxCount
// thread items have been processed or the listing runs out. Every thread on
// a fetched page is flattened completely (top-level comment first, then its
// replies in order), so the returned slice can exceed maxCount; the budget
// is a fetch cap, not a truncation of output.
//
// A failed page call ends collection for this video with whatever was
// already flattened. maxCount <= 0 means no budget: no call is made.
func FetchComments(ctx context.Context, cl Client, videoID string, maxCount int) []CommentRecord {
	logger := log.WithComponentFromContext(ctx, "jobs")

	var comments []CommentRecord
	fetched := 0
	pageToken := ""
	for fetched < maxCount {
		page, err := cl.CommentThreadPage(ctx, videoID, pageToken)
		if err != nil {
			logger.Error().
				Err(err).
				Str("event", "comments.page_failed").
				Str(log.FieldVideoID, videoID).
				Int("collected", len(comments)).
				Msg("comment listing failed, keeping partial results")
			break
		}

		for _, th := range page.Threads {
			comments = append(comments, CommentRecord{
				VideoID:     videoID,
				CommentID:   th.ID,
				Text:        th.TopLevel.Text,
				Author:      th.TopLevel.Author,
				PublishedAt: th.TopLevel.PublishedAt,
				LikeCount:   th.TopLevel.LikeCount,
			})
			for _, r := range th.Replies {
				comments = append(comments, CommentRecord{
					VideoID:     videoID,
					CommentID:   r.ID,
					Text:        r.Text,
					Author:      r.Author,
					PublishedAt: r.PublishedAt,
					LikeCount:   r.LikeCount,
					ReplyTo:     th.ID,
				})
			}
		}

		fetched += len(page.Threads)
		if page.NextPage == "" {
			break
		}
		pageToken = page.NextPage
	}
	return comments
}
