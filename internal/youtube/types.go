package youtube

// Video is one channel video with the snippet, duration and statistics
// merged into a flat record. Statistics counters are pointers because the
// API omits individual counters when the owner hides them; a nil counter
// means "not reported", not zero.
type Video struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  string
	Duration     string
	ViewCount    *uint64
	LikeCount    *uint64
	CommentCount *uint64

	ThumbnailDefault string
	ThumbnailMedium  string
	ThumbnailHigh    string
}

// VideoPage is one page of a channel's video listing, newest first.
type VideoPage struct {
	VideoIDs []string
	// NextPage is the cursor for the following page, empty on the last one.
	NextPage string
}

// ThreadComment is a single comment inside a thread, either the top-level
// comment or one of its replies.
type ThreadComment struct {
	ID          string
	Text        string
	Author      string
	PublishedAt string
	LikeCount   int64
}

// Thread is a top-level comment plus the replies the API inlines with it.
type Thread struct {
	ID       string
	TopLevel ThreadComment
	Replies  []ThreadComment
}

// ThreadPage is one page of comment threads for a video.
type ThreadPage struct {
	Threads  []Thread
	NextPage string
}
