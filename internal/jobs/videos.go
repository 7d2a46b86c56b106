package jobs

import (
	"context"
	"errors"

	"github.com/pranjal2523/youtube-data-fetcher-script/internal/log"
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/youtube"
)

// FetchAllVideos walks the channel's full video listing page by page and
// enriches every ID with its detail record, newest first.
//
// Failure handling is deliberately blunt: the first failed page or detail
// call ends the walk and whatever was collected so far is returned. A video
// whose detail lookup finds nothing (deleted or private) is skipped on its
// own; that is the only per-item recovery.
func FetchAllVideos(ctx context.Context, cl Client, channelID string) []youtube.Video {
	logger := log.WithComponentFromContext(ctx, "jobs")

	var videos []youtube.Video
	pageToken := ""
	for {
		page, err := cl.ChannelVideoPage(ctx, channelID, pageToken)
		if err != nil {
			logger.Error().
				Err(err).
				Str("event", "videos.page_failed").
				Str(log.FieldChannelID, channelID).
				Int("collected", len(videos)).
				Msg("video listing failed, keeping partial results")
			return videos
		}

		for _, id := range page.VideoIDs {
			detail, err := cl.VideoDetail(ctx, id)
			if err != nil {
				if errors.Is(err, youtube.ErrVideoNotFound) {
					logger.Warn().
						Str("event", "videos.detail_missing").
						Str(log.FieldVideoID, id).
						Msg("video has no detail record, skipping")
					continue
				}
				logger.Error().
					Err(err).
					Str("event", "videos.detail_failed").
					Str(log.FieldVideoID, id).
					Int("collected", len(videos)).
					Msg("detail fetch failed, keeping partial results")
				return videos
			}
			videos = append(videos, *detail)
		}

		if page.NextPage == "" {
			return videos
		}
		pageToken = page.NextPage
	}
}
