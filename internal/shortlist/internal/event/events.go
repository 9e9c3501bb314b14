package event

const ShortlistGeneratedEventName = "shortlist_events"

// ShortlistGeneratedEvent 榜单生成或重排完成后发出，下游做通知推送
type ShortlistGeneratedEvent struct {
	JobID int64 `json:"jobId"`
	// Trigger generate 或 rerank
	Trigger     string `json:"trigger"`
	Total       int    `json:"total"`
	Qualified   int    `json:"qualified"`
	TraceID     string `json:"traceId"`
	GeneratedAt int64  `json:"generatedAt"`
}
