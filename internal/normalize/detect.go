package normalize

import (
	"strings"

	"crawler-console/internal/model"
)

// PathRule maps path substrings to a platform.
type PathRule struct {
	Needles  []string
	Platform model.Platform
}

// ShapeRule maps a property of the first record to a platform.
type ShapeRule struct {
	Name     string
	Match    func(first *model.Record) bool
	Platform model.Platform
}

// PathRules are checked in order against the lower-cased file path.
// Short needles such as "ks" match loosely, e.g. "books/a.json" is kuaishou.
var PathRules = []PathRule{
	{Needles: []string{"douyin"}, Platform: model.PlatformDouyin},
	{Needles: []string{"bili", "bilibili"}, Platform: model.PlatformBili},
	{Needles: []string{"kuaishou", "ks"}, Platform: model.PlatformKuaishou},
	{Needles: []string{"xhs", "xiaohongshu"}, Platform: model.PlatformXHS},
	{Needles: []string{"weibo"}, Platform: model.PlatformWeibo},
}

// ShapeRules are checked in order against the first record. First match wins.
var ShapeRules = []ShapeRule{
	{
		Name:     "aweme_id",
		Match:    func(r *model.Record) bool { return has(r, "aweme_id") },
		Platform: model.PlatformDouyin,
	},
	{
		Name: "video_id with video_comment or video_danmaku",
		Match: func(r *model.Record) bool {
			return has(r, "video_id") && (r.Has("video_comment") || r.Has("video_danmaku"))
		},
		Platform: model.PlatformBili,
	},
	{
		Name:     "video_id with video_play_url",
		Match:    func(r *model.Record) bool { return has(r, "video_id") && has(r, "video_play_url") },
		Platform: model.PlatformKuaishou,
	},
	{
		Name:     "video_id",
		Match:    func(r *model.Record) bool { return has(r, "video_id") },
		Platform: model.PlatformBili,
	},
	{
		Name: "note_id with gender or create_date_time",
		Match: func(r *model.Record) bool {
			return has(r, "note_id") && (r.Has("gender") || has(r, "create_date_time"))
		},
		Platform: model.PlatformWeibo,
	},
	{
		Name: "note_id with type or tag_list",
		Match: func(r *model.Record) bool {
			return has(r, "note_id") && (r.Has("type") || r.Has("tag_list"))
		},
		Platform: model.PlatformXHS,
	},
	{
		Name:     "note_id with comment_id",
		Match:    func(r *model.Record) bool { return has(r, "note_id") && has(r, "comment_id") },
		Platform: model.PlatformXHS,
	},
	{
		Name:     "note_id",
		Match:    func(r *model.Record) bool { return has(r, "note_id") },
		Platform: model.PlatformXHS,
	},
}

// DetectPlatform guesses the platform of a file from its path, then from the
// shape of its first record.
func DetectPlatform(records []*model.Record, path string) model.Platform {
	if p, ok := DetectPlatformByPath(path); ok {
		return p
	}
	if len(records) == 0 {
		return model.PlatformUnknown
	}
	return DetectPlatformByShape(records[0])
}

// DetectPlatformByPath applies PathRules to path.
func DetectPlatformByPath(path string) (model.Platform, bool) {
	if path == "" {
		return "", false
	}
	lower := strings.ToLower(path)
	for _, rule := range PathRules {
		for _, needle := range rule.Needles {
			if strings.Contains(lower, needle) {
				return rule.Platform, true
			}
		}
	}
	return "", false
}

// DetectPlatformByShape applies ShapeRules to first.
func DetectPlatformByShape(first *model.Record) model.Platform {
	for _, rule := range ShapeRules {
		if rule.Match(first) {
			return rule.Platform
		}
	}
	return model.PlatformUnknown
}
