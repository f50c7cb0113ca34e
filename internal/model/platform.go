package model

import "strings"

// Platform is the social platform a crawler export came from.
type Platform string

const (
	PlatformXHS      Platform = "xhs"
	PlatformDouyin   Platform = "douyin"
	PlatformBili     Platform = "bili"
	PlatformWeibo    Platform = "weibo"
	PlatformKuaishou Platform = "kuaishou"
	PlatformUnknown  Platform = "unknown"
)

var platformDisplayNames = map[Platform]string{
	PlatformXHS:      "小红书",
	PlatformDouyin:   "抖音",
	PlatformBili:     "哔哩哔哩",
	PlatformWeibo:    "微博",
	PlatformKuaishou: "快手",
	PlatformUnknown:  "未知",
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the name shown in the console for p.
func (p Platform) DisplayName() string {
	if name, ok := platformDisplayNames[p]; ok {
		return name
	}
	return platformDisplayNames[PlatformUnknown]
}

// Kind tells whether a file holds posts or comments.
type Kind string

const (
	KindContent Kind = "content"
	KindComment Kind = "comment"
)

// Format is an output serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, true
	case FormatCSV:
		return FormatCSV, true
	default:
		return "", false
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	return string(f)
}
