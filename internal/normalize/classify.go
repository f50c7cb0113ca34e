package normalize

import "crawler-console/internal/model"

// ClassifyKind reports whether records are comments or posts.
func ClassifyKind(records []*model.Record) model.Kind {
	if len(records) > 0 && has(records[0], "comment_id") {
		return model.KindComment
	}
	return model.KindContent
}
