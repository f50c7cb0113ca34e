package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Producer Topics
	TopicTransformProgress = "crawler.transform.progress"
	TopicTransformResults  = "crawler.transform.results"
)
