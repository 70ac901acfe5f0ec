package domain

// Comment is one entry of a flattened comment thread.
type Comment struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Author     string  `json:"author"`
	Body       string  `json:"body"`
	Score      int     `json:"score"`
	Ups        int     `json:"ups"`
	Vote       Vote    `json:"vote"`
	CreatedUTC float64 `json:"created_utc"`
	Depth      int     `json:"depth"` // 0 for top-level comments
}

// Thread is a post with its comments in pre-order.
type Thread struct {
	Post     FeedItem  `json:"post"`
	Comments []Comment `json:"comments"`
}
