package normalize

import (
	"time"

	"crawler-console/internal/model"
)

// Normalizer maps raw crawler records into the canonical shapes.
// It is stateless apart from its clock and is safe for concurrent use.
type Normalizer struct {
	now func() time.Time
	loc *time.Location
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock replaces the clock used for missing timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// WithLocation sets the zone used for wall-clock date strings.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		n.loc = loc
	}
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		now: time.Now,
		loc: defaultLocation,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var (
	contentKeySet = keySet(model.ContentKeys)
	commentKeySet = keySet(model.CommentKeys)
)

// Content maps one post record.
func (n *Normalizer) Content(r *model.Record, platform model.Platform) model.UnifiedContent {
	return model.UnifiedContent{
		ID:            firstString(r, "note_id", "aweme_id", "video_id"),
		Title:         firstString(r, "title", "desc"),
		Content:       firstString(r, "desc", "content", "title"),
		CreateTime:    n.Timestamp(firstPresent(r, "time", "create_time", "last_update_time")),
		UserID:        firstString(r, "user_id"),
		Nickname:      firstString(r, "nickname"),
		Avatar:        firstString(r, "avatar"),
		LikedCount:    count(r.Value("liked_count")),
		CommentCount:  count(firstPresent(r, "comment_count", "comments_count", "video_comment")),
		ShareCount:    count(firstPresent(r, "share_count", "shared_count", "video_share_count")),
		URL:           firstString(r, "note_url", "aweme_url", "video_url"),
		IPLocation:    firstString(r, "ip_location"),
		SourceKeyword: firstString(r, "source_keyword"),
		Platform:      platform,
		Extra:         passThrough(r, contentKeySet),
	}
}

// Comment maps one comment record.
func (n *Normalizer) Comment(r *model.Record, platform model.Platform) model.UnifiedComment {
	parent := firstPresent(r, "parent_comment_id")
	if parent == nil {
		parent = 0
	}

	return model.UnifiedComment{
		CommentID:       firstString(r, "comment_id"),
		CreateTime:      n.Timestamp(r.Value("create_time")),
		ContentID:       firstString(r, "note_id", "aweme_id", "video_id"),
		Content:         firstString(r, "content"),
		UserID:          firstString(r, "user_id"),
		Nickname:        firstString(r, "nickname"),
		Avatar:          firstString(r, "avatar"),
		LikeCount:       count(firstPresent(r, "like_count", "comment_like_count")),
		ParentCommentID: parent,
		SubCommentCount: count(r.Value("sub_comment_count")),
		IPLocation:      firstString(r, "ip_location"),
		Platform:        platform,
		Extra:           passThrough(r, commentKeySet),
	}
}

// Contents maps records one to one, keeping their order.
func (n *Normalizer) Contents(records []*model.Record, platform model.Platform) []model.UnifiedContent {
	out := make([]model.UnifiedContent, len(records))
	for i, r := range records {
		out[i] = n.Content(r, platform)
	}
	return out
}

// Comments maps records one to one, keeping their order.
func (n *Normalizer) Comments(records []*model.Record, platform model.Platform) []model.UnifiedComment {
	out := make([]model.UnifiedComment, len(records))
	for i, r := range records {
		out[i] = n.Comment(r, platform)
	}
	return out
}

// Transform normalizes a whole file according to its kind.
func (n *Normalizer) Transform(fd model.FileDescriptor, format model.Format) model.TransformResult {
	platform := fd.Platform
	if platform == "" {
		platform = model.PlatformUnknown
	}

	res := model.TransformResult{
		FileName:         OutputFileName(platform, fd.Name, format),
		OriginalFileName: fd.Name,
		SourcePath:       fd.Path,
		Platform:         platform,
		Kind:             fd.Kind,
	}
	if fd.Kind == model.KindComment {
		res.Comments = n.Comments(fd.Records, platform)
	} else {
		res.Kind = model.KindContent
		res.Contents = n.Contents(fd.Records, platform)
	}
	return res
}

// passThrough copies the non-canonical keys of r, in order.
func passThrough(r *model.Record, canonical map[string]struct{}) *model.Record {
	extra := model.NewRecord(r.Len())
	r.Range(func(k string, v any) bool {
		if _, ok := canonical[k]; !ok {
			extra.Set(k, v)
		}
		return true
	})
	return extra
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
