package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// searchPageSize is the largest page the search endpoint accepts.
	searchPageSize = 50
	// threadPageSize is the largest page the commentThreads endpoint accepts.
	threadPageSize = 100

	// maxErrorBody caps how much of an error response is kept for diagnostics.
	maxErrorBody = 2048

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "ytfetch"
)

// Client talks to the YouTube Data API v3 over plain HTTPS with an API key.
// Calls are single-shot blocking round-trips: a failed request is reported,
// never silently retried.
type Client struct {
	base      string
	key       string
	http      *http.Client
	userAgent string
}

// Options configures the client behavior.
type Options struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// New creates a client with default options.
func New(apiKey string) (*Client, error) {
	return NewWithOptions(apiKey, Options{})
}

// NewWithOptions creates a client with explicit options. The API key is
// mandatory; everything else has a sane default.
func NewWithOptions(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("youtube: API key must not be empty")
	}
	opts = normalizeOptions(opts)

	return &Client{
		base:      strings.TrimRight(opts.BaseURL, "/"),
		key:       apiKey,
		http:      &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
	}, nil
}

func normalizeOptions(opts Options) Options {
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if strings.TrimSpace(opts.UserAgent) == "" {
		opts.UserAgent = defaultUserAgent
	}
	return opts
}

// ResolveHandle looks up the channel ID for a handle ("GoogleDevelopers",
// with or without the leading "@").
func (c *Client) ResolveHandle(ctx context.Context, handle string) (string, error) {
	params := url.Values{}
	params.Set("part", "id")
	params.Set("forHandle", handle)

	var out channelListResponse
	if err := c.get(ctx, "channels.list", "/channels", params, &out); err != nil {
		return "", err
	}
	if len(out.Items) == 0 || out.Items[0].ID == "" {
		return "", &APIError{Sentinel: ErrChannelNotFound, Operation: "channels.list"}
	}
	return out.Items[0].ID, nil
}

// ChannelVideoPage lists one page of video IDs uploaded by the channel,
// newest first. Pass an empty pageToken for the first page; the returned
// cursor is empty once the listing is exhausted.
func (c *Client) ChannelVideoPage(ctx context.Context, channelID, pageToken string) (*VideoPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("maxResults", strconv.Itoa(searchPageSize))
	params.Set("order", "date")
	params.Set("type", "video")
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out searchListResponse
	if err := c.get(ctx, "search.list", "/search", params, &out); err != nil {
		return nil, err
	}

	page := &VideoPage{
		VideoIDs: make([]string, 0, len(out.Items)),
		NextPage: out.NextPageToken,
	}
	for _, it := range out.Items {
		// Search can surface non-video entries despite type=video.
		if it.ID.VideoID == "" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, it.ID.VideoID)
	}
	return page, nil
}

// VideoDetail fetches the snippet, duration and statistics for one video.
// Returns ErrVideoNotFound when the API knows nothing about the ID, which
// happens for deleted and private videos that search still lists.
func (c *Client) VideoDetail(ctx context.Context, videoID string) (*Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", videoID)

	var out videoListResponse
	if err := c.get(ctx, "videos.list", "/videos", params, &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, &APIError{Sentinel: ErrVideoNotFound, Operation: "videos.list"}
	}

	it := out.Items[0]
	return &Video{
		ID:               it.ID,
		Title:            it.Snippet.Title,
		Description:      it.Snippet.Description,
		PublishedAt:      it.Snippet.PublishedAt,
		Duration:         it.ContentDetails.Duration,
		ViewCount:        countValue(it.Statistics.ViewCount),
		LikeCount:        countValue(it.Statistics.LikeCount),
		CommentCount:     countValue(it.Statistics.CommentCount),
		ThumbnailDefault: it.Snippet.Thumbnails.Default.URL,
		ThumbnailMedium:  it.Snippet.Thumbnails.Medium.URL,
		ThumbnailHigh:    it.Snippet.Thumbnails.High.URL,
	}, nil
}

// CommentThreadPage lists one page of comment threads for a video, replies
// inlined, plain-text comment bodies.
func (c *Client) CommentThreadPage(ctx context.Context, videoID, pageToken string) (*ThreadPage, error) {
	params := url.Values{}
	params.Set("part", "snippet,replies")
	params.Set("videoId", videoID)
	params.Set("maxResults", strconv.Itoa(threadPageSize))
	params.Set("textFormat", "plainText")
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out commentThreadsResponse
	if err := c.get(ctx, "commentThreads.list", "/commentThreads", params, &out); err != nil {
		return nil, err
	}

	page := &ThreadPage{
		Threads:  make([]Thread, 0, len(out.Items)),
		NextPage: out.NextPageToken,
	}
	for _, it := range out.Items {
		th := Thread{
			ID:       it.ID,
			TopLevel: it.Snippet.TopLevelComment.Snippet.comment(it.Snippet.TopLevelComment.ID),
		}
		for _, r := range it.Replies.Comments {
			th.Replies = append(th.Replies, r.Snippet.comment(r.ID))
		}
		page.Threads = append(page.Threads, th)
	}
	return page, nil
}

// get performs one API call and maps every failure mode onto the sentinel
// taxonomy. The response body is decoded into v on HTTP 200 only.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, v any) error {
	params.Set("key", c.key)
	rawURL := c.base + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return wrapError(op, err, 0, nil)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapError(op, err, 0, nil)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return wrapError(op, nil, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &APIError{Sentinel: ErrBadResponse, Operation: op, Err: err}
	}
	return nil
}

// statCount decodes statistics counters, which the API encodes as JSON
// strings ("12345"). Bare numbers are accepted too.
type statCount uint64

func (n *statCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`)) {
		*n = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("statistics: invalid count %q", s)
		}
		*n = statCount(v)
		return nil
	}

	var v uint64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("statistics: invalid count value: %s", string(b))
	}
	*n = statCount(v)
	return nil
}

func countValue(n *statCount) *uint64 {
	if n == nil {
		return nil
	}
	v := uint64(*n)
	return &v
}

type thumbnail struct {
	URL string `json:"url"`
}

type channelListResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

type searchListResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			Thumbnails  struct {
				Default thumbnail `json:"default"`
				Medium  thumbnail `json:"medium"`
				High    thumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount    *statCount `json:"viewCount"`
			LikeCount    *statCount `json:"likeCount"`
			CommentCount *statCount `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type commentSnippet struct {
	TextDisplay       string `json:"textDisplay"`
	AuthorDisplayName string `json:"authorDisplayName"`
	PublishedAt       string `json:"publishedAt"`
	LikeCount         int64  `json:"likeCount"`
}

func (s commentSnippet) comment(id string) ThreadComment {
	return ThreadComment{
		ID:          id,
		Text:        s.TextDisplay,
		Author:      s.AuthorDisplayName,
		PublishedAt: s.PublishedAt,
		LikeCount:   s.LikeCount,
	}
}

type commentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID      string `json:"id"`
		Snippet struct {
			TopLevelComment struct {
				ID      string         `json:"id"`
				Snippet commentSnippet `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
		Replies struct {
			Comments []struct {
				ID      string         `json:"id"`
				Snippet commentSnippet `json:"snippet"`
			} `json:"comments"`
		} `json:"replies"`
	} `json:"items"`
}
