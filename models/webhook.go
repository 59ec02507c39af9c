package models

import "encoding/json"

// WebhookActor identifies who triggered a webhook delivery
type WebhookActor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WebhookPayload is the inbound Linear webhook envelope. Its full shape is
// owned by Linear; this struct decodes only the fields the processor reads.
// Treated as read-only input and never mutated.
type WebhookPayload struct {
	Action           string         `json:"action"` // create | update | remove
	Type             string         `json:"type"`   // Issue | Comment | Project | ...
	Data             json.RawMessage `json:"data"`
	UpdatedFrom      map[string]any `json:"updatedFrom,omitempty"`
	Actor            *WebhookActor  `json:"actor,omitempty"`
	URL              string         `json:"url,omitempty"`
	WebhookID        string         `json:"webhookId,omitempty"`
	WebhookTimestamp int64          `json:"webhookTimestamp,omitempty"`
	OrganizationID   string         `json:"organizationId,omitempty"`
}

// IssueStub is the minimal issue identity carried through event processing
type IssueStub struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	URL        string `json:"url"`
}

// CommentEventData is the data snapshot of a Comment webhook delivery
type CommentEventData struct {
	ID      string     `json:"id"`
	Body    string     `json:"body"`
	IssueID string     `json:"issueId"`
	UserID  string     `json:"userId"`
	Issue   *IssueStub `json:"issue,omitempty"`
}

// IssueEventData is the data snapshot of an Issue webhook delivery
type IssueEventData struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	TeamID      string `json:"teamId"`
	CreatorID   string `json:"creatorId"`
}

// EventContext is the metadata derived once from a classified payload and
// consumed by the stream manager and the response formatter.
type EventContext struct {
	EventType  string      `json:"eventType"`
	Action     string      `json:"action"`
	Actor      string      `json:"actor"`
	Issue      IssueStub   `json:"issue"`
	References []Reference `json:"references"`
}

// ProcessingResult is returned once per processed webhook delivery.
// Processed=false signals "no actionable reference found", which is distinct
// from Success=false (a failure).
type ProcessingResult struct {
	Success   bool          `json:"success"`
	Processed bool          `json:"processed"`
	Message   string        `json:"message"`
	Context   *EventContext `json:"context,omitempty"`
	Error     string        `json:"error,omitempty"`
}
