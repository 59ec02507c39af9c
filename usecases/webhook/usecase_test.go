package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"linearcode/clients"
	"linearcode/models"
	"linearcode/services/dedup"
	"linearcode/services/stream"
	"linearcode/services/tracker"
)

const testSecret = "test_webhook_secret"

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func commentPayload(body string) []byte {
	return []byte(fmt.Sprintf(`{
		"action": "create",
		"type": "Comment",
		"webhookId": "wh-1",
		"webhookTimestamp": 1700000000,
		"actor": {"id": "actor-1", "name": "Alice"},
		"data": {
			"id": "comment-1",
			"body": %q,
			"issueId": "issue-1",
			"userId": "actor-1",
			"issue": {"id": "issue-1", "identifier": "ENG-42", "title": "Flaky test", "url": "https://linear.app/acme/issue/ENG-42"}
		}
	}`, body))
}

type usecaseMocks struct {
	tracker  *tracker.MockTrackerService
	stream   *stream.MockStreamService
	dedup    *dedup.MockDedupService
	opencode *clients.MockOpenCodeClient
}

func newTestUsecase() (*WebhookUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		tracker:  &tracker.MockTrackerService{},
		stream:   &stream.MockStreamService{},
		dedup:    &dedup.MockDedupService{},
		opencode: &clients.MockOpenCodeClient{},
	}
	mocks.stream.On("StreamEvent", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()
	mocks.dedup.On("CheckAndMark", mock.Anything).Return(true).Maybe()

	usecase := NewWebhookUsecase(testSecret, mocks.tracker, mocks.stream, mocks.dedup, mocks.opencode)
	return usecase, mocks
}

func TestProcessWebhook_InvalidSignature(t *testing.T) {
	usecase, mocks := newTestUsecase()
	body := commentPayload("@opencode run-tests")

	result := usecase.ProcessWebhook(context.Background(), body, "deadbeef")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid webhook signature")
	mocks.opencode.AssertNotCalled(t, "ExecuteCommand", mock.Anything, mock.Anything)
}

func TestProcessWebhook_MalformedPayload(t *testing.T) {
	usecase, _ := newTestUsecase()
	body := []byte("{not json")

	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid webhook payload")
}

func TestProcessWebhook_DuplicateDelivery(t *testing.T) {
	mocks := &usecaseMocks{
		tracker:  &tracker.MockTrackerService{},
		stream:   &stream.MockStreamService{},
		dedup:    &dedup.MockDedupService{},
		opencode: &clients.MockOpenCodeClient{},
	}
	mocks.dedup.On("CheckAndMark", "wh-1:1700000000:Comment:create:comment-1").Return(false)
	usecase := NewWebhookUsecase(testSecret, mocks.tracker, mocks.stream, mocks.dedup, mocks.opencode)

	body := commentPayload("@opencode run-tests")
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.False(t, result.Processed)
	assert.Contains(t, result.Message, "duplicate")
	mocks.dedup.AssertExpectations(t)
	mocks.opencode.AssertNotCalled(t, "ExecuteCommand", mock.Anything, mock.Anything)
}

func TestProcessWebhook_UnrecognizedEventType(t *testing.T) {
	usecase, _ := newTestUsecase()
	body := []byte(`{"action": "create", "type": "Reaction", "data": {}}`)

	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.False(t, result.Processed)
	require.NotNil(t, result.Context)
	assert.Equal(t, "Reaction", result.Context.EventType)
}

func TestProcessWebhook_NoReferences(t *testing.T) {
	usecase, mocks := newTestUsecase()
	body := commentPayload("just a regular comment with no marker")

	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.False(t, result.Processed)
	require.NotNil(t, result.Context)
	assert.Empty(t, result.Context.References)
	mocks.opencode.AssertNotCalled(t, "ExecuteCommand", mock.Anything, mock.Anything)
	mocks.tracker.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}

func TestProcessWebhook_FullPipeline(t *testing.T) {
	usecase, mocks := newTestUsecase()

	mocks.opencode.On("ExecuteCommand", mock.Anything, models.Command{
		Raw:    "@opencode run-tests --verbose",
		Action: "run-tests",
	}).Return(&models.CommandResult{
		Command:  "@opencode run-tests --verbose",
		Action:   "run-tests",
		Success:  true,
		Response: "all 42 tests passed",
	}, nil)

	mocks.tracker.On("CreateComment", mock.Anything, mock.MatchedBy(func(params models.CommentCreateParams) bool {
		return params.IssueID == "issue-1" && params.Body != ""
	})).Return(&models.Comment{ID: "comment-new"}, nil)

	body := commentPayload("broken build, @opencode run-tests --verbose")
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.True(t, result.Processed)
	require.NotNil(t, result.Context)
	assert.Equal(t, "Alice", result.Context.Actor)
	assert.Equal(t, "ENG-42", result.Context.Issue.Identifier)
	require.Len(t, result.Context.References, 1)
	mocks.opencode.AssertExpectations(t)
	mocks.tracker.AssertExpectations(t)
}

func TestProcessWebhook_MultipleCommandsInOrder(t *testing.T) {
	usecase, mocks := newTestUsecase()

	var executed []string
	mocks.opencode.On("ExecuteCommand", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			executed = append(executed, args.Get(1).(models.Command).Action)
		}).
		Return(&models.CommandResult{Success: true, Response: "done"}, nil)
	mocks.tracker.On("CreateComment", mock.Anything, mock.Anything).
		Return(&models.Comment{ID: "comment-new"}, nil)

	body := commentPayload("@opencode lint @opencode deploy staging")
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.Equal(t, []string{"lint", "deploy"}, executed)
}

func TestProcessWebhook_ExecutorFailureBecomesFailedResult(t *testing.T) {
	usecase, mocks := newTestUsecase()

	mocks.opencode.On("ExecuteCommand", mock.Anything, mock.Anything).
		Return(nil, errors.New("opencode server unreachable"))

	var postedBody string
	mocks.tracker.On("CreateComment", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			postedBody = args.Get(1).(models.CommentCreateParams).Body
		}).
		Return(&models.Comment{ID: "comment-new"}, nil)

	body := commentPayload("@opencode run-tests")
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	// Executor failure is reported in the reply, not a pipeline failure
	assert.True(t, result.Success)
	assert.True(t, result.Processed)
	assert.Contains(t, postedBody, "execution failed")
	assert.Contains(t, postedBody, "❌")
}

func TestProcessWebhook_PostFailureCarriesPartialContext(t *testing.T) {
	usecase, mocks := newTestUsecase()

	mocks.opencode.On("ExecuteCommand", mock.Anything, mock.Anything).
		Return(&models.CommandResult{Success: true, Response: "done"}, nil)
	mocks.tracker.On("CreateComment", mock.Anything, mock.Anything).
		Return(nil, errors.New("graphql: issue archived"))

	body := commentPayload("@opencode run-tests")
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "issue archived")
	require.NotNil(t, result.Context)
	require.Len(t, result.Context.References, 1)
}

func TestProcessWebhook_IssueDescriptionReferences(t *testing.T) {
	usecase, mocks := newTestUsecase()

	mocks.opencode.On("ExecuteCommand", mock.Anything, models.Command{
		Raw:    "@opencode triage",
		Action: "triage",
	}).Return(&models.CommandResult{Success: true, Response: "triaged"}, nil)
	mocks.tracker.On("CreateComment", mock.Anything, mock.MatchedBy(func(params models.CommentCreateParams) bool {
		return params.IssueID == "issue-5"
	})).Return(&models.Comment{ID: "comment-new"}, nil)

	body := []byte(`{
		"action": "update",
		"type": "Issue",
		"data": {
			"id": "issue-5",
			"identifier": "ENG-5",
			"title": "Needs triage",
			"description": "new crash report @opencode triage",
			"url": "https://linear.app/acme/issue/ENG-5"
		}
	}`)
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.True(t, result.Processed)
	mocks.opencode.AssertExpectations(t)
	mocks.tracker.AssertExpectations(t)
}

func TestProcessWebhook_IssueRemoveIsIgnored(t *testing.T) {
	usecase, _ := newTestUsecase()

	body := []byte(`{
		"action": "remove",
		"type": "Issue",
		"data": {"id": "issue-5", "description": "@opencode triage"}
	}`)
	result := usecase.ProcessWebhook(context.Background(), body, sign(body))

	assert.True(t, result.Success)
	assert.False(t, result.Processed)
}

func TestFormatResponse(t *testing.T) {
	body := formatResponse([]models.CommandResult{
		{Command: "@opencode run-tests", Success: true, Response: "all passed"},
		{Command: "@opencode deploy", Success: false, Response: "build broken"},
	})

	assert.Contains(t, body, "✅ `@opencode run-tests`")
	assert.Contains(t, body, "all passed")
	assert.Contains(t, body, "❌ `@opencode deploy`")
	assert.Contains(t, body, "build broken")
}

func TestDeliveryKey(t *testing.T) {
	payload := &models.WebhookPayload{
		WebhookID:        "wh-1",
		WebhookTimestamp: 1700000000,
		Type:             "Comment",
		Action:           "create",
		Data:             []byte(`{"id": "comment-1"}`),
	}
	assert.Equal(t, "wh-1:1700000000:Comment:create:comment-1", deliveryKey(payload))

	// Without webhook identity there is nothing to correlate on
	assert.Equal(t, "", deliveryKey(&models.WebhookPayload{Type: "Comment"}))
}
