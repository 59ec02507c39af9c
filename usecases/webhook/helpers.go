package webhook

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"linearcode/models"
)

// deliveryKey derives a stable identity for a webhook delivery so
// redeliveries of the same payload can be recognized. Linear does not send
// a dedicated delivery ID, so the key combines the webhook identity, the
// delivery timestamp and the subject entity.
func deliveryKey(payload *models.WebhookPayload) string {
	if payload.WebhookID == "" || payload.WebhookTimestamp == 0 {
		return ""
	}
	var data struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(payload.Data, &data)
	return fmt.Sprintf("%s:%d:%s:%s:%s",
		payload.WebhookID, payload.WebhookTimestamp, payload.Type, payload.Action, data.ID)
}

// classifyPayload decides which text field, if any, carries command
// references: comment bodies on creation, issue descriptions on creation or
// update. Everything else has no command surface.
func classifyPayload(payload *models.WebhookPayload) (string, models.IssueStub, bool) {
	switch payload.Type {
	case "Comment":
		if payload.Action != "create" {
			return "", models.IssueStub{}, false
		}
		var data models.CommentEventData
		if err := json.Unmarshal(payload.Data, &data); err != nil {
			log.Printf("⚠️ Failed to decode comment event data: %v", err)
			return "", models.IssueStub{}, false
		}
		issue := models.IssueStub{ID: data.IssueID}
		if data.Issue != nil {
			issue = *data.Issue
		}
		return data.Body, issue, true
	case "Issue":
		if payload.Action != "create" && payload.Action != "update" {
			return "", models.IssueStub{}, false
		}
		var data models.IssueEventData
		if err := json.Unmarshal(payload.Data, &data); err != nil {
			log.Printf("⚠️ Failed to decode issue event data: %v", err)
			return "", models.IssueStub{}, false
		}
		issue := models.IssueStub{
			ID:         data.ID,
			Identifier: data.Identifier,
			Title:      data.Title,
			URL:        data.URL,
		}
		return data.Description, issue, true
	default:
		return "", models.IssueStub{}, false
	}
}

func buildEventContext(payload *models.WebhookPayload, issue models.IssueStub) models.EventContext {
	actor := ""
	if payload.Actor != nil {
		actor = payload.Actor.Name
	}
	return models.EventContext{
		EventType: payload.Type,
		Action:    payload.Action,
		Actor:     actor,
		Issue:     issue,
	}
}

// formatResponse aggregates all command results into a single markdown
// reply comment.
func formatResponse(results []models.CommandResult) string {
	var b strings.Builder
	b.WriteString("**OpenCode results**\n")
	for _, result := range results {
		marker := "✅"
		if !result.Success {
			marker = "❌"
		}
		fmt.Fprintf(&b, "\n%s `%s`\n", marker, result.Command)
		if result.Response != "" {
			fmt.Fprintf(&b, "%s\n", result.Response)
		}
	}
	return b.String()
}
