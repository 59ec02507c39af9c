package core

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// IsNotFoundError checks if an error is a "not found" error.
// This function handles both the ErrNotFound sentinel and upstream
// string-based errors (the Linear API reports missing entities as
// "Entity not found" GraphQL errors).
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	// Check for the sentinel error
	if errors.Is(err, ErrNotFound) {
		return true
	}
	// Check for upstream string-based errors
	return containsNotFound(err.Error())
}

// containsNotFound checks if an error message contains "not found"
func containsNotFound(errMsg string) bool {
	// Use case-insensitive matching for various "not found" formats
	return len(errMsg) > 0 && (regexp.MustCompile(`(?i)not found`).MatchString(errMsg))
}

// OwnershipError reports that the acting user does not own the entity a
// mutating operation targets. It names the entity and the override mechanism
// so callers can recover.
type OwnershipError struct {
	EntityType string
	EntityID   string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf(
		"permission denied: %s %s was created by another user - pass force=true to override the safety check",
		e.EntityType, e.EntityID,
	)
}

// IsOwnershipError checks if an error is an ownership violation
func IsOwnershipError(err error) bool {
	var ownershipErr *OwnershipError
	return errors.As(err, &ownershipErr)
}
