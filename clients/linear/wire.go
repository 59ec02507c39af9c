package linear

import (
	"time"

	"linearcode/models"
)

// Wire structs mirror the GraphQL response shapes. Linear serializes
// DateTime scalars as RFC3339 strings, which decode into time.Time directly.

type idRef struct {
	ID string `json:"id"`
}

type userNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

func (n userNode) toModel() models.User {
	return models.User{
		ID:          n.ID,
		Name:        n.Name,
		DisplayName: n.DisplayName,
		Email:       n.Email,
	}
}

type teamNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Key  string `json:"key"`
}

func (n teamNode) toModel() models.Team {
	return models.Team{ID: n.ID, Name: n.Name, Key: n.Key}
}

type stateNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Team *idRef `json:"team"`
}

func (n stateNode) toModel() models.WorkflowState {
	state := models.WorkflowState{ID: n.ID, Name: n.Name, Type: n.Type}
	if n.Team != nil {
		state.TeamID = n.Team.ID
	}
	return state
}

type labelNode struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (n labelNode) toModel() models.Label {
	return models.Label{ID: n.ID, Name: n.Name, Color: n.Color}
}

type stateRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type issueNode struct {
	ID          string    `json:"id"`
	Identifier  string    `json:"identifier"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    float64   `json:"priority"`
	URL         string    `json:"url"`
	Creator     *idRef    `json:"creator"`
	Assignee    *idRef    `json:"assignee"`
	State       *stateRef `json:"state"`
	Team        *idRef    `json:"team"`
	Project     *idRef    `json:"project"`
	Parent      *idRef    `json:"parent"`
	Labels      struct {
		Nodes []labelNode `json:"nodes"`
	} `json:"labels"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n issueNode) toModel() models.Issue {
	issue := models.Issue{
		ID:          n.ID,
		Identifier:  n.Identifier,
		Title:       n.Title,
		Description: n.Description,
		Priority:    int(n.Priority),
		URL:         n.URL,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	if n.Creator != nil {
		issue.CreatorID = n.Creator.ID
	}
	if n.Assignee != nil {
		issue.AssigneeID = n.Assignee.ID
	}
	if n.State != nil {
		issue.StateID = n.State.ID
		issue.StateName = n.State.Name
	}
	if n.Team != nil {
		issue.TeamID = n.Team.ID
	}
	if n.Project != nil {
		issue.ProjectID = n.Project.ID
	}
	if n.Parent != nil {
		issue.ParentID = n.Parent.ID
	}
	for _, label := range n.Labels.Nodes {
		issue.Labels = append(issue.Labels, label.toModel())
	}
	return issue
}

type commentNode struct {
	ID    string `json:"id"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	Issue *idRef `json:"issue"`
	User  *idRef `json:"user"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n commentNode) toModel() models.Comment {
	comment := models.Comment{
		ID:        n.ID,
		Body:      n.Body,
		URL:       n.URL,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.Issue != nil {
		comment.IssueID = n.Issue.ID
	}
	if n.User != nil {
		comment.UserID = n.User.ID
	}
	return comment
}

type projectNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	State       string `json:"state"`
	URL         string `json:"url"`
	Creator     *idRef `json:"creator"`
	Lead        *idRef `json:"lead"`
	Teams       struct {
		Nodes []idRef `json:"nodes"`
	} `json:"teams"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n projectNode) toModel() models.Project {
	project := models.Project{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		State:       n.State,
		URL:         n.URL,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	if n.Creator != nil {
		project.CreatorID = n.Creator.ID
	}
	if n.Lead != nil {
		project.LeadID = n.Lead.ID
	}
	for _, team := range n.Teams.Nodes {
		project.TeamIDs = append(project.TeamIDs, team.ID)
	}
	return project
}

type milestoneNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Project     *idRef `json:"project"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n milestoneNode) toModel() models.ProjectMilestone {
	milestone := models.ProjectMilestone{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		TargetDate:  n.TargetDate,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
	if n.Project != nil {
		milestone.ProjectID = n.Project.ID
	}
	return milestone
}

type relationNode struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Issue        *idRef `json:"issue"`
	RelatedIssue *idRef `json:"relatedIssue"`

	CreatedAt time.Time `json:"createdAt"`
}

func (n relationNode) toModel() models.IssueRelation {
	relation := models.IssueRelation{
		ID:        n.ID,
		Type:      models.IssueRelationType(n.Type),
		CreatedAt: n.CreatedAt,
	}
	if n.Issue != nil {
		relation.IssueID = n.Issue.ID
	}
	if n.RelatedIssue != nil {
		relation.RelatedIssueID = n.RelatedIssue.ID
	}
	return relation
}
