package models

import "time"

// Stream event types emitted by the webhook processing pipeline
const (
	StreamEventWebhookReceived  = "webhook_received"
	StreamEventCommandDetected  = "command_detected"
	StreamEventCommandCompleted = "command_completed"
	StreamEventCommandFailed    = "command_failed"
	StreamEventResponsePosted   = "response_posted"
	StreamEventProcessingFailed = "processing_failed"
)

// Stream event severities
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// StreamEventCommand carries command details on a stream event, when the
// event describes command detection or execution.
type StreamEventCommand struct {
	Raw      string `json:"raw"`
	Action   string `json:"action"`
	Success  *bool  `json:"success,omitempty"`
	Response string `json:"response,omitempty"`
}

// StreamEventMetadata is fixed per-event bookkeeping for UI consumption
type StreamEventMetadata struct {
	Source      string    `json:"source"`
	ProcessedAt time.Time `json:"processedAt"`
	Severity    string    `json:"severity"`
	Tags        []string  `json:"tags"`
}

// StreamEvent is a formatted, bounded-history record pushed to the live UI.
// Owned exclusively by the stream manager's history buffer; destroyed by
// FIFO eviction once history exceeds capacity.
type StreamEvent struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Timestamp   time.Time           `json:"timestamp"`
	Actor       string              `json:"actor"`
	Issue       IssueStub           `json:"issue"`
	Command     *StreamEventCommand `json:"command,omitempty"`
	Metadata    StreamEventMetadata `json:"metadata"`
}
