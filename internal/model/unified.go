package model

// Canonical keys, in output order.
var (
	ContentKeys = []string{
		"id", "title", "content", "create_time", "user_id", "nickname", "avatar",
		"liked_count", "comment_count", "share_count", "url", "ip_location",
		"source_keyword", "platform",
	}
	CommentKeys = []string{
		"comment_id", "create_time", "content_id", "content", "user_id", "nickname",
		"avatar", "like_count", "parent_comment_id", "sub_comment_count",
		"ip_location", "platform",
	}
)

// UnifiedContent is a post in canonical shape.
// Extra holds the source keys that are not canonical, in source order.
type UnifiedContent struct {
	ID            string
	Title         string
	Content       string
	CreateTime    int64
	UserID        string
	Nickname      string
	Avatar        string
	LikedCount    int64
	CommentCount  int64
	ShareCount    int64
	URL           string
	IPLocation    string
	SourceKeyword string
	Platform      Platform
	Extra         *Record
}

// Record flattens c into canonical keys followed by the extras.
func (c UnifiedContent) Record() *Record {
	r := NewRecord(len(ContentKeys) + c.Extra.Len())
	r.Set("id", c.ID)
	r.Set("title", c.Title)
	r.Set("content", c.Content)
	r.Set("create_time", c.CreateTime)
	r.Set("user_id", c.UserID)
	r.Set("nickname", c.Nickname)
	r.Set("avatar", c.Avatar)
	r.Set("liked_count", c.LikedCount)
	r.Set("comment_count", c.CommentCount)
	r.Set("share_count", c.ShareCount)
	r.Set("url", c.URL)
	r.Set("ip_location", c.IPLocation)
	r.Set("source_keyword", c.SourceKeyword)
	r.Set("platform", string(c.Platform))
	appendExtra(r, c.Extra)
	return r
}

// MarshalJSON implements json.Marshaler.
func (c UnifiedContent) MarshalJSON() ([]byte, error) {
	return c.Record().MarshalJSON()
}

// UnifiedComment is a comment in canonical shape.
// ParentCommentID keeps the source type (string or number), 0 when absent.
type UnifiedComment struct {
	CommentID       string
	CreateTime      int64
	ContentID       string
	Content         string
	UserID          string
	Nickname        string
	Avatar          string
	LikeCount       int64
	ParentCommentID any
	SubCommentCount int64
	IPLocation      string
	Platform        Platform
	Extra           *Record
}

// Record flattens c into canonical keys followed by the extras.
func (c UnifiedComment) Record() *Record {
	r := NewRecord(len(CommentKeys) + c.Extra.Len())
	r.Set("comment_id", c.CommentID)
	r.Set("create_time", c.CreateTime)
	r.Set("content_id", c.ContentID)
	r.Set("content", c.Content)
	r.Set("user_id", c.UserID)
	r.Set("nickname", c.Nickname)
	r.Set("avatar", c.Avatar)
	r.Set("like_count", c.LikeCount)
	r.Set("parent_comment_id", c.ParentCommentID)
	r.Set("sub_comment_count", c.SubCommentCount)
	r.Set("ip_location", c.IPLocation)
	r.Set("platform", string(c.Platform))
	appendExtra(r, c.Extra)
	return r
}

// MarshalJSON implements json.Marshaler.
func (c UnifiedComment) MarshalJSON() ([]byte, error) {
	return c.Record().MarshalJSON()
}

// appendExtra copies extra into r without touching keys r already has.
func appendExtra(r, extra *Record) {
	extra.Range(func(k string, v any) bool {
		if !r.Has(k) {
			r.Set(k, v)
		}
		return true
	})
}

// TransformResult is the normalized form of one FileDescriptor.
// Exactly one of Contents or Comments is populated, according to Kind.
type TransformResult struct {
	FileName         string
	OriginalFileName string
	SourcePath       string
	Platform         Platform
	Kind             Kind
	Contents         []UnifiedContent
	Comments         []UnifiedComment
}

// Count returns the number of normalized records.
func (r TransformResult) Count() int {
	if r.Kind == KindComment {
		return len(r.Comments)
	}
	return len(r.Contents)
}

// Rows returns the normalized records as flat ordered records.
func (r TransformResult) Rows() []*Record {
	rows := make([]*Record, 0, r.Count())
	if r.Kind == KindComment {
		for _, c := range r.Comments {
			rows = append(rows, c.Record())
		}
		return rows
	}
	for _, c := range r.Contents {
		rows = append(rows, c.Record())
	}
	return rows
}
