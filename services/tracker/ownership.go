package tracker

import (
	"context"
	"fmt"
	"log"

	"linearcode/core"
)

// checkOwnership enforces the ownership gate: a mutating operation requires
// that the acting user's ID equal the entity's recorded owner ID, unless the
// caller passes force or safety checks are disabled. An entity with no
// recorded owner is not gated.
func (s *TrackerService) checkOwnership(
	ctx context.Context,
	entityType, entityID, ownerID string,
	force bool,
) error {
	if !s.safetyChecks || force {
		return nil
	}
	if ownerID == "" {
		return nil
	}

	user, err := s.currentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve current user for ownership check: %w", err)
	}

	if user.ID != ownerID {
		log.Printf("❌ Ownership check failed for %s %s: owner %s, acting user %s",
			entityType, entityID, ownerID, user.ID)
		return &core.OwnershipError{EntityType: entityType, EntityID: entityID}
	}
	return nil
}
