package stream

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"linearcode/clients"
	"linearcode/core"
	"linearcode/models"
)

// MaxHistory is the bounded capacity of the in-memory event log. Oldest
// events are evicted first once the buffer is full.
const MaxHistory = 1000

// EventChannel is the generic channel name every accepted event is emitted
// on. Per-type channels are derived as EventChannel + ":" + event type.
const EventChannel = "event_streamed"

// StreamManager is a bounded, filterable, in-memory event log with
// publish/subscribe semantics for UI consumption.
type StreamManager struct {
	notifier clients.SocketIONotifier

	mu      sync.Mutex
	active  bool
	history []models.StreamEvent
	filters []string
}

// NewStreamManager creates a stream manager in the stopped state
func NewStreamManager(notifier clients.SocketIONotifier) *StreamManager {
	return &StreamManager{
		notifier: notifier,
		history:  make([]models.StreamEvent, 0, MaxHistory),
	}
}

// Start enables event streaming
func (s *StreamManager) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	log.Printf("📊 Event stream started")
}

// Stop disables event streaming. History is preserved.
func (s *StreamManager) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	log.Printf("🛑 Event stream stopped - history preserved (%d events)", len(s.history))
}

func (s *StreamManager) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// StreamEvent formats the event context into a canonical stream event,
// applies active filters, appends it to history and notifies subscribers.
// Returns (nil, nil) when the manager is stopped or the event is filtered
// out, and (nil, error) when the event type has no formatting rule. Errors
// are reported to the caller rather than swallowed here so the no-throw
// contract stays visible in the signature.
func (s *StreamManager) StreamEvent(
	eventType string,
	eventContext models.EventContext,
	command *models.StreamEventCommand,
) (*models.StreamEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, nil
	}

	event, err := formatEvent(eventType, eventContext, command)
	if err != nil {
		return nil, fmt.Errorf("failed to format stream event: %w", err)
	}

	if !s.matchesFilters(event) {
		return nil, nil
	}

	s.history = append(s.history, *event)
	if len(s.history) > MaxHistory {
		s.history = s.history[len(s.history)-MaxHistory:]
	}

	s.notifier.Emit(EventChannel, *event)
	s.notifier.Emit(EventChannel+":"+event.Type, *event)

	log.Printf("📨 Streamed event %s (%s): %s", event.ID, event.Type, event.Title)
	return event, nil
}

// History returns the most recent events, newest last. A limit <= 0 or
// larger than the buffer returns the full history.
func (s *StreamManager) History(limit int) []models.StreamEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}
	out := make([]models.StreamEvent, limit)
	copy(out, s.history[len(s.history)-limit:])
	return out
}

// SetFilters replaces the active filter set. Filters are case-insensitive
// substrings matched against type, severity, tags, actor and issue
// identifier; an event is kept if any filter matches any field.
func (s *StreamManager) SetFilters(filters []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = make([]string, 0, len(filters))
	for _, f := range filters {
		f = strings.TrimSpace(f)
		if f != "" {
			s.filters = append(s.filters, strings.ToLower(f))
		}
	}
	log.Printf("📋 Stream filters set: %v", s.filters)
}

func (s *StreamManager) Filters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.filters))
	copy(out, s.filters)
	return out
}

func (s *StreamManager) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = nil
	log.Printf("📋 Stream filters cleared")
}

// matchesFilters implements inclusive-OR matching: an empty filter set keeps
// everything. Caller must hold s.mu.
func (s *StreamManager) matchesFilters(event *models.StreamEvent) bool {
	if len(s.filters) == 0 {
		return true
	}

	fields := []string{
		strings.ToLower(event.Type),
		strings.ToLower(event.Metadata.Severity),
		strings.ToLower(event.Actor),
		strings.ToLower(event.Issue.Identifier),
	}
	for _, tag := range event.Metadata.Tags {
		fields = append(fields, strings.ToLower(tag))
	}

	for _, filter := range s.filters {
		for _, field := range fields {
			if strings.Contains(field, filter) {
				return true
			}
		}
	}
	return false
}

// formatEvent derives title, description, severity and tags per event type
// from a fixed mapping. Unknown event types are a formatting error.
func formatEvent(
	eventType string,
	eventContext models.EventContext,
	command *models.StreamEventCommand,
) (*models.StreamEvent, error) {
	issue := eventContext.Issue
	actor := eventContext.Actor
	if actor == "" {
		actor = "unknown"
	}

	var title, description, severity string
	var tags []string

	switch eventType {
	case models.StreamEventWebhookReceived:
		title = fmt.Sprintf("Webhook received: %s %s", eventContext.EventType, eventContext.Action)
		description = fmt.Sprintf("%s triggered a %s %s event on %s",
			actor, eventContext.EventType, eventContext.Action, issueLabel(issue))
		severity = models.SeverityInfo
		tags = []string{"webhook", strings.ToLower(eventContext.EventType)}
	case models.StreamEventCommandDetected:
		if command == nil {
			return nil, fmt.Errorf("command_detected event requires command details")
		}
		title = fmt.Sprintf("Command detected: %s", command.Action)
		description = fmt.Sprintf("%s invoked %q on %s", actor, command.Raw, issueLabel(issue))
		severity = models.SeverityInfo
		tags = []string{"command", command.Action}
	case models.StreamEventCommandCompleted:
		if command == nil {
			return nil, fmt.Errorf("command_completed event requires command details")
		}
		title = fmt.Sprintf("Command completed: %s", command.Action)
		description = fmt.Sprintf("%q on %s finished successfully", command.Raw, issueLabel(issue))
		severity = models.SeveritySuccess
		tags = []string{"command", command.Action}
	case models.StreamEventCommandFailed:
		if command == nil {
			return nil, fmt.Errorf("command_failed event requires command details")
		}
		title = fmt.Sprintf("Command failed: %s", command.Action)
		description = fmt.Sprintf("%q on %s failed: %s", command.Raw, issueLabel(issue), command.Response)
		severity = models.SeverityError
		tags = []string{"command", command.Action}
	case models.StreamEventResponsePosted:
		title = "Response posted"
		description = fmt.Sprintf("Reply comment posted on %s", issueLabel(issue))
		severity = models.SeveritySuccess
		tags = []string{"response"}
	case models.StreamEventProcessingFailed:
		title = "Webhook processing failed"
		description = fmt.Sprintf("Processing of %s %s event on %s failed",
			eventContext.EventType, eventContext.Action, issueLabel(issue))
		severity = models.SeverityError
		tags = []string{"webhook", "failure"}
	default:
		return nil, fmt.Errorf("unknown stream event type: %s", eventType)
	}

	return &models.StreamEvent{
		ID:          core.NewID("ev"),
		Type:        eventType,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
		Actor:       actor,
		Issue:       issue,
		Command:     command,
		Metadata: models.StreamEventMetadata{
			Source:      "webhook",
			ProcessedAt: time.Now(),
			Severity:    severity,
			Tags:        tags,
		},
	}, nil
}

func issueLabel(issue models.IssueStub) string {
	if issue.Identifier != "" {
		return issue.Identifier
	}
	if issue.ID != "" {
		return issue.ID
	}
	return "unknown issue"
}
