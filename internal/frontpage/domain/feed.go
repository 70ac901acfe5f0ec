package domain

// FeedItem is a normalized post as served by the feed and thread endpoints.
type FeedItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"` // fullname, e.g. t3_abc123
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	Subreddit   string  `json:"subreddit"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	Ups         int     `json:"ups"`
	Vote        Vote    `json:"vote"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"` // seconds
	Over18      bool    `json:"over_18"`
	Domain      string  `json:"domain"`
	Rank        float64 `json:"rank"`
	IsSelf      bool    `json:"is_self"`
	Selftext    string  `json:"selftext,omitempty"`  // self posts only
	Image       string  `json:"image,omitempty"`     // preview or direct image URL
	Video       string  `json:"video,omitempty"`     // native video fallback URL
	Thumbnail   string  `json:"thumbnail,omitempty"` // absolute http(s) only
}

// SortMode is the final ordering applied to a feed.
type SortMode string

const (
	SortRank SortMode = "rank"
	SortNew  SortMode = "new"
	SortTop  SortMode = "top"
)

// ParseSortMode falls back to SortRank for anything unknown.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortNew, SortTop:
		return SortMode(s)
	default:
		return SortRank
	}
}

// TopWindow is the time window of a top listing.
type TopWindow string

const (
	WindowHour  TopWindow = "hour"
	WindowDay   TopWindow = "day"
	WindowWeek  TopWindow = "week"
	WindowMonth TopWindow = "month"
	WindowYear  TopWindow = "year"
	WindowAll   TopWindow = "all"
)

// ParseTopWindow falls back to WindowDay for anything unknown.
func ParseTopWindow(s string) TopWindow {
	switch w := TopWindow(s); w {
	case WindowHour, WindowDay, WindowWeek, WindowMonth, WindowYear, WindowAll:
		return w
	default:
		return WindowDay
	}
}
