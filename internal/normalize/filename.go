package normalize

import (
	"fmt"
	"regexp"
	"time"

	"crawler-console/internal/model"
)

var sourceExtension = regexp.MustCompile(`(?i)\.(json|csv)$`)

// OutputFileName builds the archive entry name for a transformed file.
// OutputFileName(bili, "p1.json", json) is "bili-p1-formatted.json".
func OutputFileName(platform model.Platform, sourceName string, format model.Format) string {
	stem := sourceExtension.ReplaceAllString(sourceName, "")
	return fmt.Sprintf("%s-%s-formatted.%s", platform, stem, format.Extension())
}

// ArchiveFileName names the download for a batch produced at t, using the UTC date.
func ArchiveFileName(format model.Format, t time.Time) string {
	return fmt.Sprintf("data_formatted_%s_%s.zip", format, t.UTC().Format(time.DateOnly))
}
