package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"linearcode/clients"
	"linearcode/models"
	"linearcode/services"
	"linearcode/utils"
)

// WebhookUsecase orchestrates processing of a single Linear webhook
// delivery: verify signature, parse and classify the payload, detect
// command references, delegate execution and post the aggregated reply.
type WebhookUsecase struct {
	webhookSecret  string
	trackerService services.TrackerService
	streamService  services.StreamService
	dedupService   services.DedupService
	opencodeClient clients.OpenCodeClient
}

func NewWebhookUsecase(
	webhookSecret string,
	trackerService services.TrackerService,
	streamService services.StreamService,
	dedupService services.DedupService,
	opencodeClient clients.OpenCodeClient,
) *WebhookUsecase {
	return &WebhookUsecase{
		webhookSecret:  webhookSecret,
		trackerService: trackerService,
		streamService:  streamService,
		dedupService:   dedupService,
		opencodeClient: opencodeClient,
	}
}

// ProcessWebhook runs the full processing pipeline over a raw delivery.
// It always returns a result; Success=false carries the error string and
// whatever context was built before the failure.
func (u *WebhookUsecase) ProcessWebhook(
	ctx context.Context,
	body []byte,
	signature string,
) *models.ProcessingResult {
	log.Printf("📋 Starting to process webhook delivery (%d bytes)", len(body))

	if !utils.VerifySignature(body, signature, u.webhookSecret) {
		log.Printf("❌ Webhook signature verification failed")
		return &models.ProcessingResult{
			Success: false,
			Message: "signature verification failed",
			Error:   "invalid webhook signature",
		}
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("❌ Failed to parse webhook payload: %v", err)
		return &models.ProcessingResult{
			Success: false,
			Message: "payload parsing failed",
			Error:   fmt.Sprintf("invalid webhook payload: %v", err),
		}
	}

	// Older webhook configurations omit webhookId; give those deliveries a
	// generated identity so log lines stay correlatable.
	deliveryID := payload.WebhookID
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	if !u.dedupService.CheckAndMark(deliveryKey(&payload)) {
		log.Printf("📋 Delivery %s is a redelivery, acknowledging without processing", deliveryID)
		return &models.ProcessingResult{
			Success:   true,
			Processed: false,
			Message:   "duplicate delivery acknowledged",
		}
	}

	text, issue, classified := classifyPayload(&payload)
	eventContext := buildEventContext(&payload, issue)

	if !classified {
		log.Printf("📋 Ignoring %s %s event - no command surface", payload.Type, payload.Action)
		return &models.ProcessingResult{
			Success:   true,
			Processed: false,
			Message:   fmt.Sprintf("no actionable event for %s %s", payload.Type, payload.Action),
			Context:   &eventContext,
		}
	}

	u.emitEvent(models.StreamEventWebhookReceived, eventContext, nil)

	eventContext.References = utils.DetectReferences(text)
	if len(eventContext.References) == 0 {
		log.Printf("📋 No %s references found in %s %s event",
			utils.ReferenceMarker, payload.Type, payload.Action)
		return &models.ProcessingResult{
			Success:   true,
			Processed: false,
			Message:   "no command references found",
			Context:   &eventContext,
		}
	}
	log.Printf("🆕 Detected %d command reference(s) on %s",
		len(eventContext.References), eventContext.Issue.Identifier)

	results := u.executeCommands(ctx, eventContext)

	if err := u.postResponse(ctx, eventContext, results); err != nil {
		u.emitEvent(models.StreamEventProcessingFailed, eventContext, nil)
		return &models.ProcessingResult{
			Success:   false,
			Processed: false,
			Message:   "failed to post response comment",
			Context:   &eventContext,
			Error:     err.Error(),
		}
	}
	u.emitEvent(models.StreamEventResponsePosted, eventContext, nil)

	log.Printf("✅ Processed delivery %s: %d command(s) executed on %s",
		deliveryID, len(results), eventContext.Issue.Identifier)
	return &models.ProcessingResult{
		Success:   true,
		Processed: true,
		Message:   fmt.Sprintf("processed %d command(s)", len(results)),
		Context:   &eventContext,
	}
}

// executeCommands runs every extracted command in order. Executor failures
// become failed command results rather than aborting the batch.
func (u *WebhookUsecase) executeCommands(
	ctx context.Context,
	eventContext models.EventContext,
) []models.CommandResult {
	results := make([]models.CommandResult, 0, len(eventContext.References))
	for _, ref := range eventContext.References {
		command := models.Command{
			Raw:    ref.Raw,
			Action: utils.ExtractAction(ref),
		}
		u.emitEvent(models.StreamEventCommandDetected, eventContext, &models.StreamEventCommand{
			Raw:    command.Raw,
			Action: command.Action,
		})

		result, err := u.opencodeClient.ExecuteCommand(ctx, command)
		if err != nil {
			log.Printf("❌ Command execution failed for %q: %v", command.Raw, err)
			result = &models.CommandResult{
				Command:  command.Raw,
				Action:   command.Action,
				Success:  false,
				Response: fmt.Sprintf("execution failed: %v", err),
			}
		}
		results = append(results, *result)

		streamType := models.StreamEventCommandCompleted
		if !result.Success {
			streamType = models.StreamEventCommandFailed
		}
		u.emitEvent(streamType, eventContext, &models.StreamEventCommand{
			Raw:      command.Raw,
			Action:   command.Action,
			Success:  &result.Success,
			Response: result.Response,
		})
	}
	return results
}

// postResponse composes a single aggregated reply and creates it as a
// comment on the originating issue.
func (u *WebhookUsecase) postResponse(
	ctx context.Context,
	eventContext models.EventContext,
	results []models.CommandResult,
) error {
	if eventContext.Issue.ID == "" {
		return fmt.Errorf("cannot post response: event has no issue")
	}

	_, err := u.trackerService.CreateComment(ctx, models.CommentCreateParams{
		IssueID: eventContext.Issue.ID,
		Body:    formatResponse(results),
	})
	if err != nil {
		return fmt.Errorf("failed to create response comment: %w", err)
	}
	return nil
}

// emitEvent streams an event, logging and swallowing formatting errors so
// streaming never affects webhook processing.
func (u *WebhookUsecase) emitEvent(
	eventType string,
	eventContext models.EventContext,
	command *models.StreamEventCommand,
) {
	if _, err := u.streamService.StreamEvent(eventType, eventContext, command); err != nil {
		log.Printf("⚠️ Failed to stream %s event: %v", eventType, err)
	}
}
