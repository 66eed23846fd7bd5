package model

// AnalyticsEvent is a fire-and-forget tracking event. There is no batching,
// retry, or delivery guarantee; the sink only logs and counts.
type AnalyticsEvent struct {
	Name       string                 `json:"name" binding:"required"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}
