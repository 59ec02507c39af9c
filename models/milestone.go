package models

import (
	"time"

	"github.com/samber/mo"
)

// ProjectMilestone is a Linear project milestone snapshot
type ProjectMilestone struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ProjectID   string    `json:"project_id"`
	TargetDate  string    `json:"target_date"` // ISO date (YYYY-MM-DD), empty when unset
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MilestoneCreateParams are the caller-supplied fields for milestone creation
type MilestoneCreateParams struct {
	ProjectID   string  `json:"project_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TargetDate  *string `json:"target_date,omitempty"`
}

// MilestoneUpdateParams express tri-state update semantics (see IssueUpdateParams)
type MilestoneUpdateParams struct {
	Name        mo.Option[string]
	Description mo.Option[string]
	TargetDate  mo.Option[*string]
}
