package models

import "time"

// IssueRelationType enumerates the relation kinds Linear supports
type IssueRelationType string

const (
	RelationTypeBlocks    IssueRelationType = "blocks"
	RelationTypeDuplicate IssueRelationType = "duplicate"
	RelationTypeRelated   IssueRelationType = "related"
)

// IssueRelation links two issues
type IssueRelation struct {
	ID             string            `json:"id"`
	Type           IssueRelationType `json:"type"`
	IssueID        string            `json:"issue_id"`
	RelatedIssueID string            `json:"related_issue_id"`
	CreatedAt      time.Time         `json:"created_at"`
}

// RelationCreateParams are the caller-supplied fields for relation creation
type RelationCreateParams struct {
	IssueID        string            `json:"issue_id"`
	RelatedIssueID string            `json:"related_issue_id"`
	Type           IssueRelationType `json:"type"`
}
