package models

import (
	"time"

	"github.com/samber/mo"
)

// Issue is a Linear issue snapshot
type Issue struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	URL         string    `json:"url"`
	CreatorID   string    `json:"creator_id"`
	AssigneeID  string    `json:"assignee_id"`
	StateID     string    `json:"state_id"`
	StateName   string    `json:"state_name"`
	TeamID      string    `json:"team_id"`
	ProjectID   string    `json:"project_id"`
	ParentID    string    `json:"parent_id"`
	Labels      []Label   `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IssueCreateParams are the caller-supplied fields for issue creation.
// An empty TeamID auto-selects the first team of the authenticated account.
type IssueCreateParams struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TeamID      string   `json:"team_id"`
	Priority    *int     `json:"priority,omitempty"`
	AssigneeID  *string  `json:"assignee_id,omitempty"`
	StateID     *string  `json:"state_id,omitempty"`
	ProjectID   *string  `json:"project_id,omitempty"`
	ParentID    *string  `json:"parent_id,omitempty"`
	LabelIDs    []string `json:"label_ids,omitempty"`
}

// IssueUpdateParams express tri-state update semantics: a None field leaves
// the stored value unchanged, Some(nil) clears the relationship, Some(&v)
// re-resolves and assigns it.
type IssueUpdateParams struct {
	Title       mo.Option[string]
	Description mo.Option[string]
	Priority    mo.Option[int]
	AssigneeID  mo.Option[*string]
	StateID     mo.Option[*string]
	ProjectID   mo.Option[*string]
	ParentID    mo.Option[*string]
	LabelIDs    mo.Option[[]string]
}

// IssueFilter narrows issue listings
type IssueFilter struct {
	TeamID    string `json:"team_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	StateID   string `json:"state_id,omitempty"`
}
