// Package tracker implements the services.TrackerService interface on top of
// the raw Linear client, adding the ownership gate, tri-state update
// semantics, team auto-selection, and label resolution policy.
package tracker

import (
	"context"
	"fmt"
	"log"
	"sync"

	"linearcode/clients"
	"linearcode/models"
)

// DefaultListLimit applies when a caller passes limit <= 0
const DefaultListLimit = 50

type TrackerService struct {
	linearClient clients.LinearClient
	safetyChecks bool

	// viewer identity is lazily fetched once and reused for the lifetime of
	// the service; there is no invalidation short of process restart
	viewerMu sync.Mutex
	viewer   *models.User
}

// NewTrackerService creates a tracker service. safetyChecks toggles the
// ownership gate on mutating operations.
func NewTrackerService(linearClient clients.LinearClient, safetyChecks bool) *TrackerService {
	return &TrackerService{
		linearClient: linearClient,
		safetyChecks: safetyChecks,
	}
}

// AuthTest verifies the configured API key by fetching the viewer identity
func (s *TrackerService) AuthTest(ctx context.Context) (*models.User, error) {
	log.Printf("📋 Starting auth test against Linear API")
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with Linear: %w", err)
	}
	log.Printf("✅ Authenticated as %s (%s)", user.Name, user.ID)
	return user, nil
}

// currentUser returns the cached viewer identity, fetching it on first use
func (s *TrackerService) currentUser(ctx context.Context) (*models.User, error) {
	s.viewerMu.Lock()
	defer s.viewerMu.Unlock()

	if s.viewer != nil {
		return s.viewer, nil
	}

	user, err := s.linearClient.Viewer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	s.viewer = user
	return user, nil
}

// defaultTeamID resolves the first team of the authenticated account. This
// is a convenience default, not a correctness guarantee when multiple teams
// exist - callers wanting a specific team must pass one.
func (s *TrackerService) defaultTeamID(ctx context.Context) (string, error) {
	teams, err := s.linearClient.Teams(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch teams: %w", err)
	}
	if len(teams) == 0 {
		return "", fmt.Errorf("no teams available for the authenticated account")
	}
	log.Printf("📋 Auto-selected team %s (%s)", teams[0].Name, teams[0].ID)
	return teams[0].ID, nil
}

// resolveLabelIDs verifies each label ID against the tracker. Unresolvable
// IDs are dropped from the final set rather than failing the operation.
func (s *TrackerService) resolveLabelIDs(ctx context.Context, labelIDs []string) []string {
	resolved := make([]string, 0, len(labelIDs))
	for _, id := range labelIDs {
		label, err := s.linearClient.GetLabel(ctx, id)
		if err != nil {
			log.Printf("⚠️ Dropping label %s: lookup failed: %v", id, err)
			continue
		}
		if label == nil {
			log.Printf("⚠️ Dropping label %s: not found", id)
			continue
		}
		resolved = append(resolved, label.ID)
	}
	return resolved
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
