package jobs

import (
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/export"
	"github.com/pranjal2523/youtube-data-fetcher-script/internal/youtube"
)

var videoHeaders = []string{
	"Video ID", "Title", "Description", "Published At", "Duration",
	"View Count", "Like Count", "Comment Count", "Default Thumbnail",
	"Medium Thumbnail", "High Thumbnail",
}

var commentHeaders = []string{
	"Video ID", "Comment ID", "Comment Text", "Author Name",
	"Published At", "Like Count", "Reply To",
}

// videosTable lays the video records out in workbook column order.
func videosTable(videos []youtube.Video) export.Table {
	rows := make([][]any, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, []any{
			v.ID, v.Title, v.Description, v.PublishedAt, v.Duration,
			countCell(v.ViewCount), countCell(v.LikeCount), countCell(v.CommentCount),
			v.ThumbnailDefault, v.ThumbnailMedium, v.ThumbnailHigh,
		})
	}
	return export.Table{Sheet: "Videos", Headers: videoHeaders, Rows: rows}
}

// commentsTable lays the flattened comment records out in workbook column
// order, top-level comments and replies interleaved as collected.
func commentsTable(comments []CommentRecord) export.Table {
	rows := make([][]any, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []any{
			c.VideoID, c.CommentID, c.Text, c.Author,
			c.PublishedAt, c.LikeCount, c.ReplyTo,
		})
	}
	return export.Table{Sheet: "Comments", Headers: commentHeaders, Rows: rows}
}

// countCell keeps hidden counters distinguishable in the sheet: nil renders
// as an empty cell instead of a zero.
func countCell(n *uint64) any {
	if n == nil {
		return nil
	}
	return *n
}
