package models

import (
	"time"

	"github.com/samber/mo"
)

// Project is a Linear project snapshot
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	State       string    `json:"state"`
	URL         string    `json:"url"`
	CreatorID   string    `json:"creator_id"`
	LeadID      string    `json:"lead_id"`
	TeamIDs     []string  `json:"team_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectCreateParams are the caller-supplied fields for project creation.
// An empty TeamID auto-selects the first team of the authenticated account.
type ProjectCreateParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TeamID      string  `json:"team_id"`
	LeadID      *string `json:"lead_id,omitempty"`
}

// ProjectUpdateParams express tri-state update semantics (see IssueUpdateParams)
type ProjectUpdateParams struct {
	Name        mo.Option[string]
	Description mo.Option[string]
	State       mo.Option[string]
	LeadID      mo.Option[*string]
}
